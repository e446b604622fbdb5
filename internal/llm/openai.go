package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/studyway/studyway/internal/common"
	"github.com/studyway/studyway/internal/config"
)

// OpenAIProvider calls the OpenAI chat completions API with a bounded retry
// policy for transient failures.
type OpenAIProvider struct {
	client  openai.Client
	model   string
	retrier retrier
}

// NewProvider builds the OpenAI-backed provider from configuration. It
// returns ErrNotConfigured when no API key is present; callers surface that
// before issuing any network call.
func NewProvider(cfg config.Config) (*OpenAIProvider, error) {
	logger := common.Logger()
	key := strings.TrimSpace(cfg.OpenAIAPIKey)
	if key == "" || key == "your_openai_api_key_here" {
		return nil, ErrNotConfigured
	}
	opts := []option.RequestOption{option.WithAPIKey(key)}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.HTTPTimeout))
	}
	if cfg.OpenAIBaseURL != "" {
		logger.Info("llm: using custom endpoint", "endpoint", cfg.OpenAIBaseURL)
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	provider := &OpenAIProvider{
		client: openai.NewClient(opts...),
		model:  cfg.OpenAIModel,
		retrier: retrier{
			maxAttempts: cfg.MaxRetries,
			baseBackoff: cfg.RetryBackoff,
		},
	}
	logger.Info("llm: OpenAI provider configured", "model", provider.model)
	return provider, nil
}

func (o *OpenAIProvider) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages provided")
	}
	logger := common.Logger()
	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(o.model),
		Temperature: openai.Float(temperature(opts)),
	}
	for _, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}
	if opts.JSONMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}
	logger.Debug("llm: sending chat completion", "model", o.model, "messages", len(messages), "json_mode", opts.JSONMode)
	var content string
	err := o.retrier.do(ctx, func() error {
		resp, err := o.client.Chat.Completions.New(ctx, params)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no choices returned")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	logger.Debug("llm: chat completion succeeded", "length", len(content))
	return content, nil
}

func (o *OpenAIProvider) Name() string {
	return "openai"
}

func temperature(opts Options) float64 {
	if opts.Temperature < 0 {
		return 0
	}
	if opts.Temperature == 0 {
		return 0.7
	}
	return opts.Temperature
}

// StatusCode extracts the HTTP status of an upstream API error, or 0 when
// the error did not come from the API (network failure, timeout).
func StatusCode(err error) int {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode
	}
	return 0
}
