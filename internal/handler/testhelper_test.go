package handler

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/gemigram/internal/domain"
	"github.com/set-night/gemigram/internal/metrics"
	"github.com/set-night/gemigram/internal/repository"
	"github.com/set-night/gemigram/internal/service"
)

type fakeAPI struct {
	sent []*bot.SendMessageParams
}

func (f *fakeAPI) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	return &models.Message{ID: len(f.sent)}, nil
}

func (f *fakeAPI) GetFile(_ context.Context, params *bot.GetFileParams) (*models.File, error) {
	return &models.File{FileID: params.FileID}, nil
}

func (f *fakeAPI) FileDownloadLink(file *models.File) string {
	return "https://files.invalid/" + file.FileID
}

func (f *fakeAPI) texts() []string {
	var out []string
	for _, p := range f.sent {
		out = append(out, p.Text)
	}
	return out
}

type fakeGenerator struct {
	reply       string
	description string
	err         error

	prompts []string
	images  [][]byte
}

func (g *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func (g *fakeGenerator) DescribeImage(_ context.Context, prompt string, image []byte) (string, error) {
	g.prompts = append(g.prompts, prompt)
	g.images = append(g.images, image)
	return g.description, g.err
}

type fakeSearcher struct {
	results []domain.SearchResult
	err     error
	queries []string
}

func (s *fakeSearcher) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

type fakeRasterizer struct {
	page  []byte
	err   error
	calls int
}

func (r *fakeRasterizer) FirstPage([]byte) ([]byte, error) {
	r.calls++
	return r.page, r.err
}

type fakeDownloader struct {
	files map[string][]byte
}

func (d *fakeDownloader) Download(_ context.Context, fileID string) ([]byte, error) {
	data, ok := d.files[fileID]
	if !ok {
		return nil, errors.New("file not found")
	}
	return data, nil
}

type fixture struct {
	h          *Handler
	api        *fakeAPI
	store      *repository.MemoryStore
	ai         *fakeGenerator
	search     *fakeSearcher
	rasterizer *fakeRasterizer
	files      *fakeDownloader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		api:        &fakeAPI{},
		store:      repository.NewMemoryStore(),
		ai:         &fakeGenerator{},
		search:     &fakeSearcher{},
		rasterizer: &fakeRasterizer{page: []byte("page-png")},
		files:      &fakeDownloader{files: map[string][]byte{}},
	}
	f.h = New(Deps{
		API:        f.api,
		Users:      service.NewUserService(f.store),
		History:    service.NewHistoryService(f.store),
		AI:         f.ai,
		Search:     f.search,
		Rasterizer: f.rasterizer,
		Files:      f.files,
		Metrics:    metrics.New(),
	})
	return f
}

func textUpdate(chatID int64, text string) *models.Update {
	return &models.Update{Message: &models.Message{
		Chat: models.Chat{ID: chatID, FirstName: "Ada", Username: "ada"},
		Text: text,
	}}
}
