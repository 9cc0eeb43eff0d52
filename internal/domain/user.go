package domain

// User is the registration record of a chat. PhoneNumber stays nil until the
// chat shares its contact card.
type User struct {
	ChatID      int64   `bson:"chat_id"`
	FirstName   string  `bson:"first_name"`
	Username    string  `bson:"username"`
	PhoneNumber *string `bson:"phone_number"`
}

func (u *User) HasPhone() bool {
	return u.PhoneNumber != nil && *u.PhoneNumber != ""
}
