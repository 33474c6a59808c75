// Package chat answers visitor questions about Mars through the Anthropic
// Messages API.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultModel     = "claude-haiku-4-5"
	DefaultMaxTokens = 512
	DefaultTimeout   = 30 * time.Second

	// MaxQuestionLength caps the question in runes.
	MaxQuestionLength = 500

	tracerName = "github.com/jonesrussell/mars-explorer/internal/chat"
)

const systemPrompt = `You are a friendly guide for Mars Explorer, an educational site about the planet Mars.
Answer questions about Mars, its exploration, and related space science in a few short paragraphs of markdown.
If a question has nothing to do with Mars or space, say so briefly and steer back to Mars.`

var (
	// ErrNotConfigured is returned when no API key was configured.
	ErrNotConfigured = errors.New("ANTHROPIC_API_KEY not set")
	// ErrEmptyQuestion is returned for a blank question.
	ErrEmptyQuestion = errors.New("question is empty")
	// ErrQuestionTooLong is returned when a question exceeds MaxQuestionLength.
	ErrQuestionTooLong = errors.New("question is too long")
	// ErrEmptyAnswer is returned when the model replied without any text.
	ErrEmptyAnswer = errors.New("empty answer")
)

// Config configures a Client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	// BaseURL overrides the API host; tests point it at httptest.
	BaseURL string
}

// Client is a thin wrapper over the Messages API.
type Client struct {
	api        anthropic.Client
	configured bool
	model      string
	maxTokens  int64
	tracer     trace.Tracer
}

// NewClient creates a Client. With an empty API key the client is built but
// every Answer returns ErrNotConfigured.
func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:        anthropic.NewClient(opts...),
		configured: cfg.APIKey != "",
		model:      cfg.Model,
		maxTokens:  int64(cfg.MaxTokens),
		tracer:     otel.Tracer(tracerName),
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c.configured
}

// Answer sends one question and returns the model's text reply.
func (c *Client) Answer(ctx context.Context, question string) (string, error) {
	if !c.configured {
		return "", ErrNotConfigured
	}
	question, err := NormalizeQuestion(question)
	if err != nil {
		return "", err
	}

	ctx, span := c.tracer.Start(ctx, "chat.Answer", trace.WithAttributes(attribute.String("chat.model", c.model)))
	defer span.End()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(question)),
		},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", fmt.Errorf("ask model: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	answer := strings.TrimSpace(b.String())
	if answer == "" {
		span.SetStatus(codes.Error, "empty answer")
		return "", ErrEmptyAnswer
	}
	return answer, nil
}

// NormalizeQuestion trims q and checks its length.
func NormalizeQuestion(q string) (string, error) {
	q = strings.TrimSpace(q)
	switch {
	case q == "":
		return "", ErrEmptyQuestion
	case len([]rune(q)) > MaxQuestionLength:
		return "", ErrQuestionTooLong
	}
	return q, nil
}
