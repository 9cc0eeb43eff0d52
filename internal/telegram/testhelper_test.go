package telegram

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type fakeAPI struct {
	sent    []*bot.SendMessageParams
	sendErr error
	failAt  int // 1-based send that fails; 0 disables

	file    *models.File
	fileErr error
	link    string
}

func (f *fakeAPI) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	if f.failAt > 0 && len(f.sent)+1 == f.failAt {
		return nil, errors.New("telegram: Bad Request")
	}
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, params)
	return &models.Message{ID: len(f.sent)}, nil
}

func (f *fakeAPI) GetFile(_ context.Context, params *bot.GetFileParams) (*models.File, error) {
	if f.fileErr != nil {
		return nil, f.fileErr
	}
	if f.file != nil {
		return f.file, nil
	}
	return &models.File{FileID: params.FileID, FilePath: "photos/" + params.FileID + ".jpg"}, nil
}

func (f *fakeAPI) FileDownloadLink(file *models.File) string {
	return f.link + "/" + file.FilePath
}
