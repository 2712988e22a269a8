package narrative

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	antoption "github.com/anthropics/anthropic-sdk-go/option"
)

const DefaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicConfig configures the messages API provider
type AnthropicConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
	BaseURL   string
}

type anthropicGenerator struct {
	client    anthropic.Client
	apiKey    string
	model     string
	maxTokens int64
}

// NewAnthropic creates a Generator backed by the Anthropic messages API
func NewAnthropic(cfg *AnthropicConfig) Generator {
	if cfg == nil {
		panic("AnthropicConfig cannot be nil")
	}

	opts := []antoption.RequestOption{antoption.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, antoption.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, antoption.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &anthropicGenerator{
		client:    anthropic.NewClient(opts...),
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (g *anthropicGenerator) Generate(ctx context.Context, req *Request) (string, error) {
	key := req.APIKey
	if key == "" {
		key = g.apiKey
	}
	if key == "" {
		return "", ErrMissingCredential
	}

	system, user := BuildPrompt(req)
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	}
	if req.Voice.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Voice.Temperature)
	}

	msg, err := g.client.Messages.New(ctx, params, antoption.WithAPIKey(key))
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", &Failure{
				Provider:   ProviderAnthropic,
				Kind:       ClassifyStatus(apiErr.StatusCode),
				StatusCode: apiErr.StatusCode,
				Err:        err,
			}
		}
		return "", &Failure{Provider: ProviderAnthropic, Kind: ClassifyTransportError(err), Err: err}
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &Failure{Provider: ProviderAnthropic, Kind: KindMalformedResponse, Err: errors.New("no text content in message")}
	}

	return text, nil
}
