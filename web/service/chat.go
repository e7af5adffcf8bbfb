package service

import (
	"context"
	"fmt"

	"github.com/lingochat/lingochat/web/provider"
	"github.com/lingochat/lingochat/web/session"
)

// ChatService dispatches user messages to the response provider.
type ChatService struct {
	responder provider.Responder
}

func NewChatService(responder provider.Responder) *ChatService {
	return &ChatService{responder: responder}
}

// Respond returns the provider's reply to message in the session language,
// verbatim. The provider is only called for authenticated sessions and
// non-empty messages; whitespace is passed through unchanged.
func (s *ChatService) Respond(ctx context.Context, state session.State, message string) (string, error) {
	if !state.IsAuthenticated() {
		return "", ErrUnauthenticated
	}
	if message == "" {
		return "", fmt.Errorf("%w: empty message", ErrInvalidInput)
	}

	reply, err := s.responder.Reply(ctx, message, state.Language)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}
	return reply, nil
}
