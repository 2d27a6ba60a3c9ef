package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaigo "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultModel keeps per-message cost low; answers go out over SMS.
	DefaultModel = "gpt-4o-mini"

	// DefaultRequestTimeout bounds a single completion call. The engine
	// usually sets a tighter deadline on the context.
	DefaultRequestTimeout = 10 * time.Second

	// maxAnswerRunes keeps answers within two concatenated SMS segments.
	maxAnswerRunes = 300
)

// Config holds settings for the OpenAI-compatible client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIClient implements Asker over a chat-completion endpoint.
type OpenAIClient struct {
	client openaigo.Client
	model  string
}

// NewOpenAIClient builds a client from config. The API key is required;
// callers that have none should not construct a client at all and let
// the engine fall back.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("assistant: api key is required")
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		option.WithRequestTimeout(timeout),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}

	return &OpenAIClient{
		client: openaigo.NewClient(opts...),
		model:  model,
	}, nil
}

// Ask sends the student's question with a short system prompt naming
// the assessment context and returns the model's answer, trimmed to an
// SMS-friendly length.
func (c *OpenAIClient) Ask(ctx context.Context, sc SessionContext, question string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openaigo.ChatCompletionNewParams{
		Model: openaigo.ChatModel(c.model),
		Messages: []openaigo.ChatCompletionMessageParamUnion{
			openaigo.SystemMessage(systemPrompt(sc)),
			openaigo.UserMessage(strings.TrimSpace(question)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", fmt.Errorf("chat completion returned an empty answer")
	}
	return clampRunes(answer, maxAnswerRunes), nil
}

func systemPrompt(sc SessionContext) string {
	var b strings.Builder
	b.WriteString("You are a career guidance counsellor for Kenyan CBE students, ")
	b.WriteString("answering over SMS. Reply in at most two short sentences, plain text, ")
	b.WriteString("no markdown. Answer in the student's language where possible.")
	fmt.Fprintf(&b, " Student language: %s.", sc.Language)
	if sc.Level != "" {
		fmt.Fprintf(&b, " Level: %s.", sc.Level)
	}
	if sc.Grade != 0 {
		fmt.Fprintf(&b, " Grade: %d.", sc.Grade)
	}
	if sc.Pathway != "" {
		fmt.Fprintf(&b, " Recommended pathway: %s.", sc.Pathway)
	}
	if sc.Phase != "" {
		fmt.Fprintf(&b, " They paused the assessment at step %s.", sc.Phase)
	}
	return b.String()
}

func clampRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n-1])) + "…"
}
