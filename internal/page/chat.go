package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
	"github.com/jonesrussell/mars-explorer/internal/chat"
	"github.com/jonesrussell/mars-explorer/internal/render"
)

const (
	chatOffline     = "The Mars assistant is offline. Set ANTHROPIC_API_KEY to enable it."
	chatUnavailable = "The Mars assistant is unavailable right now. Please try again later."
)

// Answerer answers a single question. chat.Client implements it.
type Answerer interface {
	Configured() bool
	Answer(ctx context.Context, question string) (string, error)
}

// ChatPage asks the assistant the question in ?q=.
type ChatPage struct {
	answerer Answerer
}

// NewChatPage creates the chat page. answerer may be nil.
func NewChatPage(answerer Answerer) *ChatPage {
	return &ChatPage{answerer: answerer}
}

// Render shows the question form and, for a non-empty ?q=, the model's answer.
func (p *ChatPage) Render(ctx context.Context, s render.Surface, req Request) error {
	question := req.Query.Get("q")

	s.Header("🤖 AI Chatbot")
	s.Text("Ask anything about Mars.")

	if p.answerer == nil || !p.answerer.Configured() {
		s.Info(chatOffline)
		return nil
	}

	s.Form(render.Form{
		Action: "/",
		Submit: "Ask",
		Fields: []render.Field{
			{Type: render.FieldHidden, Name: "page", Value: string(Chat)},
			{
				Type:        render.FieldText,
				Name:        "q",
				Label:       "Question",
				Value:       question,
				Placeholder: "How tall is Olympus Mons?",
			},
		},
	})

	if question == "" {
		return nil
	}

	normalized, err := chat.NormalizeQuestion(question)
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		return nil
	case errors.Is(err, chat.ErrQuestionTooLong):
		s.Info(fmt.Sprintf("Please keep questions under %d characters.", chat.MaxQuestionLength))
		return nil
	}

	answer, err := p.answerer.Answer(ctx, normalized)
	if err != nil {
		logger.FromContext(ctx).Warn("Chat answer failed", logger.Error(err))
		s.Info(chatUnavailable)
		return nil
	}

	s.Subheading("You asked: " + normalized)
	s.Markdown(answer)
	return nil
}
