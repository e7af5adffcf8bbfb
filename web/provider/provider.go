// Package provider contains clients for the external services lingochat relies
// on: the chatbot that produces replies and the translation service.
package provider

import (
	"context"

	"github.com/lingochat/lingochat/web/locale"
)

// Responder produces a chatbot reply to message in the given language.
type Responder interface {
	Reply(ctx context.Context, message string, lang locale.Language) (string, error)
}

// Translator translates text and detects its language. Detect returns a
// language code that need not be in the supported set.
type Translator interface {
	Translate(ctx context.Context, text string, dest locale.Language) (string, error)
	Detect(ctx context.Context, text string) (string, error)
}

// ResponderFunc adapts a function to Responder.
type ResponderFunc func(ctx context.Context, message string, lang locale.Language) (string, error)

func (f ResponderFunc) Reply(ctx context.Context, message string, lang locale.Language) (string, error) {
	return f(ctx, message, lang)
}
