package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/web/locale"

	"github.com/goccy/go-json"
)

var errMalformedTranslation = errors.New("malformed translation response")

// GoogleTranslatorConfig points at the public translate_a/single endpoint or a compatible one.
type GoogleTranslatorConfig struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GoogleTranslator uses the unauthenticated web translation endpoint with source auto-detection.
type GoogleTranslator struct {
	cfg GoogleTranslatorConfig
}

func NewGoogleTranslator(cfg GoogleTranslatorConfig) *GoogleTranslator {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &GoogleTranslator{cfg: cfg}
}

func (g *GoogleTranslator) Translate(ctx context.Context, text string, dest locale.Language) (string, error) {
	parts, err := g.query(ctx, text, dest.String())
	if err != nil {
		return "", err
	}

	segments, ok := parts[0].([]any)
	if !ok {
		return "", errMalformedTranslation
	}
	var sb strings.Builder
	for _, seg := range segments {
		fields, ok := seg.([]any)
		if !ok || len(fields) == 0 {
			continue
		}
		if s, ok := fields[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if sb.Len() == 0 {
		return "", errMalformedTranslation
	}
	return sb.String(), nil
}

func (g *GoogleTranslator) Detect(ctx context.Context, text string) (string, error) {
	parts, err := g.query(ctx, text, locale.DefaultLanguage.String())
	if err != nil {
		return "", err
	}
	if len(parts) < 3 {
		return "", errMalformedTranslation
	}
	code, ok := parts[2].(string)
	if !ok || code == "" {
		return "", errMalformedTranslation
	}
	return code, nil
}

// query returns the top-level JSON array: [segments, _, detectedSource, ...].
func (g *GoogleTranslator) query(ctx context.Context, text, target string) ([]any, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.URL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build translate request: %w", err)
	}
	resp, err := g.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call translator: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read translator body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translator returned status %d", resp.StatusCode)
	}

	var parts []any
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("decode translator body: %w", err)
	}
	if len(parts) == 0 {
		return nil, errMalformedTranslation
	}
	return parts, nil
}

// BestEffortTranslator never fails: translation errors return the input text
// and detection errors return the default language. A nil inner translator
// always falls back.
type BestEffortTranslator struct {
	inner Translator
}

func NewBestEffortTranslator(inner Translator) *BestEffortTranslator {
	return &BestEffortTranslator{inner: inner}
}

func (b *BestEffortTranslator) Translate(ctx context.Context, text string, dest locale.Language) string {
	if b.inner == nil {
		return text
	}
	out, err := b.inner.Translate(ctx, text, dest)
	if err != nil {
		logger.Warning("Translation error:", err)
		return text
	}
	return out
}

func (b *BestEffortTranslator) Detect(ctx context.Context, text string) string {
	if b.inner == nil {
		return locale.DefaultLanguage.String()
	}
	code, err := b.inner.Detect(ctx, text)
	if err != nil {
		logger.Warning("Language detection error:", err)
		return locale.DefaultLanguage.String()
	}
	return code
}
