package generate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTemperature     = 0.7
	DefaultTopK            = 40
	DefaultTopP            = 0.8
	DefaultMaxOutputTokens = 8192
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is required")

// Model turns a prompt into text.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiModel is a thin wrapper around the genai client. Transient failures
// are retried; anything else is returned as is.
type GeminiModel struct {
	cli    *genai.Client
	model  string
	config *genai.GenerateContentConfig
	retry  retrier
}

type GeminiOption func(*geminiOptions)

type geminiOptions struct {
	model      string
	httpClient *http.Client
	baseURL    string
}

// WithModelName overrides the default model.
func WithModelName(name string) GeminiOption {
	return func(o *geminiOptions) {
		if name != "" {
			o.model = name
		}
	}
}

func WithGeminiHTTPClient(c *http.Client) GeminiOption {
	return func(o *geminiOptions) { o.httpClient = c }
}

// WithGeminiBaseURL points the client at a different endpoint, mostly for tests.
func WithGeminiBaseURL(u string) GeminiOption {
	return func(o *geminiOptions) { o.baseURL = u }
}

func NewGeminiModel(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiModel, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	o := geminiOptions{model: DefaultModel}
	for _, opt := range opts {
		opt(&o)
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
	}
	if o.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: o.baseURL}
	}

	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiModel{
		cli:   cli,
		model: o.model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](DefaultTemperature),
			TopK:            genai.Ptr[float32](DefaultTopK),
			TopP:            genai.Ptr[float32](DefaultTopP),
			MaxOutputTokens: DefaultMaxOutputTokens,
		},
		retry: defaultRetrier(),
	}, nil
}

func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	return withRetry(ctx, g.retry, func() (string, error) {
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
			g.config,
		)
		if err != nil {
			return "", err
		}
		return responseText(resp), nil
	})
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
