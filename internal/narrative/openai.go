package narrative

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	oaioption "github.com/openai/openai-go/option"
)

const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultMaxTokens   = 150
)

// OpenAIConfig configures the chat completions provider
type OpenAIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
	// BaseURL points the client at a compatible endpoint, used by tests
	BaseURL string
}

type openAIGenerator struct {
	client    openai.Client
	apiKey    string
	model     string
	maxTokens int64
}

// NewOpenAI creates a Generator backed by OpenAI chat completions. Retries
// are disabled: the caller's timeout bounds the whole attempt.
func NewOpenAI(cfg *OpenAIConfig) Generator {
	if cfg == nil {
		panic("OpenAIConfig cannot be nil")
	}

	opts := []oaioption.RequestOption{oaioption.WithMaxRetries(0)}
	if cfg.APIKey != "" {
		opts = append(opts, oaioption.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, oaioption.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &openAIGenerator{
		client:    openai.NewClient(opts...),
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, req *Request) (string, error) {
	key := req.APIKey
	if key == "" {
		key = g.apiKey
	}
	if key == "" {
		return "", ErrMissingCredential
	}

	system, user := BuildPrompt(req)
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens: openai.Int(g.maxTokens),
	}
	if req.Voice.Temperature > 0 {
		params.Temperature = openai.Float(req.Voice.Temperature)
	}

	completion, err := g.client.Chat.Completions.New(ctx, params, oaioption.WithAPIKey(key))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &Failure{
				Provider:   ProviderOpenAI,
				Kind:       ClassifyStatus(apiErr.StatusCode),
				StatusCode: apiErr.StatusCode,
				Err:        err,
			}
		}
		return "", &Failure{Provider: ProviderOpenAI, Kind: ClassifyTransportError(err), Err: err}
	}

	if len(completion.Choices) == 0 {
		return "", &Failure{Provider: ProviderOpenAI, Kind: KindMalformedResponse, Err: errors.New("no choices in completion")}
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", &Failure{Provider: ProviderOpenAI, Kind: KindMalformedResponse, Err: errors.New("empty completion")}
	}

	return text, nil
}
