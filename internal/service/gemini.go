package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/set-night/gemigram/internal/domain"
	"google.golang.org/api/option"
)

// GeminiService sends text prompts and images to a Gemini model.
type GeminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, opts ...option.ClientOption) (*GeminiService, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiService{client: client, modelName: modelName}, nil
}

func (s *GeminiService) Close() error {
	return s.client.Close()
}

// GenerateText sends the prompt as-is, without any system instruction.
func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.GenerativeModel(s.modelName).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return responseText(resp)
}

// DescribeImage sends an instruction together with an encoded image.
func (s *GeminiService) DescribeImage(ctx context.Context, prompt string, data []byte) (string, error) {
	format, err := imageFormat(data)
	if err != nil {
		return "", err
	}

	resp, err := s.client.GenerativeModel(s.modelName).GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(format, data),
	)
	if err != nil {
		return "", fmt.Errorf("gemini describe image: %w", err)
	}
	return responseText(resp)
}

// imageFormat decodes the image header and returns the format name Gemini
// expects after "image/".
func imageFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	switch format {
	case "jpeg", "png":
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedImage, format)
	}
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domain.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", domain.ErrEmptyResponse
	}
	return sb.String(), nil
}
