package provider

import (
	"context"

	"github.com/lingochat/lingochat/caching"
	"github.com/lingochat/lingochat/web/locale"
)

// CachedTranslator memoizes successful results of another Translator.
// Errors are never cached.
type CachedTranslator struct {
	inner Translator
	cache *caching.Cache
}

func NewCachedTranslator(inner Translator, cache *caching.Cache) *CachedTranslator {
	return &CachedTranslator{inner: inner, cache: cache}
}

func (t *CachedTranslator) Translate(ctx context.Context, text string, dest locale.Language) (string, error) {
	key := "t:" + dest.String() + ":" + text
	if v, ok := t.cache.Get(key); ok {
		return v, nil
	}
	out, err := t.inner.Translate(ctx, text, dest)
	if err != nil {
		return "", err
	}
	t.cache.Set(key, out)
	return out, nil
}

func (t *CachedTranslator) Detect(ctx context.Context, text string) (string, error) {
	key := "d:" + text
	if v, ok := t.cache.Get(key); ok {
		return v, nil
	}
	code, err := t.inner.Detect(ctx, text)
	if err != nil {
		return "", err
	}
	t.cache.Set(key, code)
	return code, nil
}
