package telegram

import "github.com/go-telegram/bot/models"

// ContactRequestKeyboard returns a one-time reply keyboard with a single
// button that shares the user's contact card.
func ContactRequestKeyboard(text string) *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: text, RequestContact: true}},
		},
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
	}
}

// RemoveKeyboard hides a previously sent reply keyboard.
func RemoveKeyboard() *models.ReplyKeyboardRemove {
	return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
}
