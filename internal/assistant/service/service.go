package assistantservice

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/xw1nchester/shopbuddy-backend/internal/assistant"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant/gateway"
	"github.com/xw1nchester/shopbuddy-backend/internal/pii"
	"go.uber.org/zap"
)

const (
	EmptyReplyText = "I'm sorry, I couldn't process that request. Please try again."

	reasonNotConfigured = "AI service not configured"
	reasonUnreachable   = "AI service is unreachable"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockassistantservice
type Completer interface {
	Complete(ctx context.Context, apiKey string, messages []gateway.Message) (string, error)
}

// KeySource returns the gateway API key. It is called on every Reply so a
// rotated secret is picked up without a restart.
type KeySource func() string

// EnvKey reads the API key from the environment variable name.
func EnvKey(name string) KeySource {
	return func() string {
		return os.Getenv(name)
	}
}

type service struct {
	completer Completer
	apiKey    KeySource
	currency  string
	logger    *zap.Logger
}

func New(completer Completer, apiKey KeySource, currency string, logger *zap.Logger) *service {
	return &service{
		completer: completer,
		apiKey:    apiKey,
		currency:  currency,
		logger:    logger,
	}
}

// Reply sends the conversation and the store context to the gateway in a
// single round trip and maps the answer to an Outcome. Turns are masked again
// before they leave the process.
func (s *service) Reply(ctx context.Context, history []assistant.Turn, sc assistant.StoreContext) assistant.Outcome {
	apiKey := s.apiKey()
	if apiKey == "" {
		s.logger.Error("gateway API key is not configured")

		return assistant.Failure{Reason: reasonNotConfigured}
	}

	messages := make([]gateway.Message, 0, len(history)+1)
	messages = append(messages, gateway.Message{
		Role:    string(assistant.RoleSystem),
		Content: assistant.BuildSystemPrompt(sc, s.currency),
	})
	for _, turn := range history {
		messages = append(messages, gateway.Message{
			Role:    string(turn.Role),
			Content: pii.Mask(turn.Content),
		})
	}

	s.logger.Info(
		"processing chat request",
		zap.String("store", sc.Store.Name),
		zap.Int("messages", len(history)),
	)

	text, err := s.completer.Complete(ctx, apiKey, messages)
	if err != nil {
		return s.failure(err)
	}

	if text == "" {
		text = EmptyReplyText
	}

	s.logger.Info("assistant reply generated", zap.String("store", sc.Store.Name))

	return assistant.Success{Text: text}
}

func (s *service) failure(err error) assistant.Outcome {
	var statusErr *gateway.StatusError
	if !errors.As(err, &statusErr) {
		s.logger.Error("gateway request failed", zap.Error(err))

		return assistant.Failure{Reason: reasonUnreachable, Err: err}
	}

	s.logger.Error(
		"gateway returned an error",
		zap.Int("status", statusErr.StatusCode),
		zap.String("body", statusErr.Body),
	)

	switch statusErr.StatusCode {
	case http.StatusTooManyRequests:
		return assistant.RateLimited{}
	case http.StatusPaymentRequired:
		return assistant.CreditsDepleted{}
	default:
		return assistant.Failure{Reason: statusErr.Error(), Err: err}
	}
}
