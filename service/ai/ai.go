package ai

//go:generate mockgen -source=ai.go -package=ai -destination=ai_mock.go

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// Request is one completion call.
type Request struct {
	Model     string
	System    string
	Prompt    string
	MaxTokens int
}

// Service is a text-completion service.
type Service interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	APIKey  string `env:"RELAY_OPENAI_API_KEY"`
	BaseURL string `env:"RELAY_OPENAI_BASE_URL"`
}

// New creates a new service with conf.
func New(conf ServiceConfig) Service {
	clientConf := openai.DefaultConfig(conf.APIKey)
	if conf.BaseURL != "" {
		clientConf.BaseURL = conf.BaseURL
	}
	return &service{client: openai.NewClientWithConfig(clientConf)}
}

type service struct {
	client *openai.Client
}

func (s *service) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
