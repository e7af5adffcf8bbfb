package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingochat/lingochat/web/locale"
	"github.com/lingochat/lingochat/web/provider"
	"github.com/lingochat/lingochat/web/session"
)

// TranslateService exposes best-effort translation and detection to logged-in users.
type TranslateService struct {
	translator *provider.BestEffortTranslator
}

func NewTranslateService(translator *provider.BestEffortTranslator) *TranslateService {
	return &TranslateService{translator: translator}
}

// Translate translates text into dest, or into the session language when dest is empty.
func (s *TranslateService) Translate(ctx context.Context, state session.State, text, dest string) (string, locale.Language, error) {
	if !state.IsAuthenticated() {
		return "", "", ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return "", "", fmt.Errorf("%w: empty text", ErrInvalidInput)
	}

	lang := state.Language
	if dest != "" {
		var ok bool
		if lang, ok = locale.ParseLanguage(dest); !ok {
			return "", "", fmt.Errorf("%w: %w", ErrInvalidInput, session.ErrInvalidLanguage)
		}
	}
	return s.translator.Translate(ctx, text, lang), lang, nil
}

// Detect returns the language code of text; "en" when detection fails.
func (s *TranslateService) Detect(ctx context.Context, state session.State, text string) (string, error) {
	if !state.IsAuthenticated() {
		return "", ErrUnauthenticated
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", ErrInvalidInput)
	}
	return s.translator.Detect(ctx, text), nil
}
