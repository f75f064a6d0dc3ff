package summary

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Define errors
var (
	// ErrEmptyCompletion is returned when the API answers without any choices
	ErrEmptyCompletion = errors.New("completion returned no choices")

	// ErrEmptyImage is returned when the API answers without image data
	ErrEmptyImage = errors.New("image generation returned no data")
)

// OpenAIConfig holds configuration for the OpenAI-compatible completer
type OpenAIConfig struct {
	// APIKey authenticates against the endpoint
	APIKey string

	// BaseURL overrides the endpoint, for OpenAI-compatible providers
	BaseURL string

	// Model is the chat model to use
	Model string

	// ImageModel is the image model to use, empty disables GenerateImage
	ImageModel string
}

// openAICompleter implements ChatCompleter and ImageGenerator against any
// OpenAI-compatible endpoint
type openAICompleter struct {
	client     openai.Client
	model      string
	imageModel string
}

// NewOpenAICompleter creates a new OpenAI-backed chat completer
func NewOpenAICompleter(cfg *OpenAIConfig) (*openAICompleter, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	if cfg.Model == "" {
		return nil, errors.New("model cannot be empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAICompleter{
		client:     openai.NewClient(opts...),
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
	}, nil
}

// Complete sends one system+user exchange and returns the reply text
func (c *openAICompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
		TopP:        openai.Float(0.9),
		MaxTokens:   openai.Int(500),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImage renders one PNG for the prompt and returns its bytes
func (c *openAICompleter) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	if c.imageModel == "" {
		return nil, errors.New("no image model configured")
	}

	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(c.imageModel),
		Size:           openai.ImageGenerateParamsSize1024x1024,
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
		N:              openai.Int(1),
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrEmptyImage
	}

	image, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return image, nil
}
