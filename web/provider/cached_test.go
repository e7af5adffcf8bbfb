package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lingochat/lingochat/caching"
	"github.com/lingochat/lingochat/web/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingTranslator struct {
	translates, detects int
	fail                bool
}

func (c *countingTranslator) Translate(_ context.Context, text string, dest locale.Language) (string, error) {
	c.translates++
	if c.fail {
		return "", errors.New("down")
	}
	return dest.String() + ":" + text, nil
}

func (c *countingTranslator) Detect(context.Context, string) (string, error) {
	c.detects++
	if c.fail {
		return "", errors.New("down")
	}
	return "hi", nil
}

func TestCachedTranslator(t *testing.T) {
	inner := &countingTranslator{}
	tr := NewCachedTranslator(inner, caching.NewCache(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		out, err := tr.Translate(ctx, "hello", locale.Tamil)
		require.NoError(t, err)
		assert.Equal(t, "ta:hello", out)
	}
	out, err := tr.Translate(ctx, "hello", locale.Telugu)
	require.NoError(t, err)
	assert.Equal(t, "te:hello", out)
	assert.Equal(t, 2, inner.translates)

	for i := 0; i < 2; i++ {
		code, err := tr.Detect(ctx, "नमस्ते")
		require.NoError(t, err)
		assert.Equal(t, "hi", code)
	}
	assert.Equal(t, 1, inner.detects)
}

func TestCachedTranslator_DoesNotCacheErrors(t *testing.T) {
	inner := &countingTranslator{fail: true}
	tr := NewCachedTranslator(inner, caching.NewCache(time.Minute))

	_, err := tr.Translate(context.Background(), "x", locale.Hindi)
	assert.Error(t, err)
	_, err = tr.Translate(context.Background(), "x", locale.Hindi)
	assert.Error(t, err)
	assert.Equal(t, 2, inner.translates)
}
