package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-telegram/bot"
)

// FileFetcher downloads attachments referenced by file id.
type FileFetcher struct {
	api        API
	httpClient *http.Client
}

func NewFileFetcher(api API, httpClient *http.Client) *FileFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FileFetcher{api: api, httpClient: httpClient}
}

// Download fetches a file from Telegram by file ID.
func (f *FileFetcher) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := f.api.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.api.FileDownloadLink(file), nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file data: %w", err)
	}
	return data, nil
}
