package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lingochat/lingochat/web/locale"

	"github.com/goccy/go-json"
)

// HTTPResponderConfig describes a chatbot backend reachable over HTTP.
type HTTPResponderConfig struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type replyRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

type replyResponse struct {
	Response string `json:"response"`
}

// HTTPResponder posts {"message","lang"} to the backend and reads {"response"}.
type HTTPResponder struct {
	cfg HTTPResponderConfig
}

func NewHTTPResponder(cfg HTTPResponderConfig) *HTTPResponder {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &HTTPResponder{cfg: cfg}
}

func (r *HTTPResponder) Reply(ctx context.Context, message string, lang locale.Language) (string, error) {
	body, err := json.Marshal(replyRequest{Message: message, Lang: lang.String()})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build reply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if r.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	}

	resp, err := r.cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call responder: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read responder body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("responder returned status %d", resp.StatusCode)
	}

	var out replyResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode responder body: %w", err)
	}
	return out.Response, nil
}

var echoPrefix = map[locale.Language]string{
	locale.English:   "You said",
	locale.Telugu:    "మీరు చెప్పారు",
	locale.Hindi:     "आपने कहा",
	locale.Tamil:     "நீங்கள் சொன்னது",
	locale.Malayalam: "നിങ്ങൾ പറഞ്ഞു",
	locale.Kannada:   "ನೀವು ಹೇಳಿದ್ದು",
}

// EchoResponder repeats the message back. It is used when no backend is configured.
type EchoResponder struct{}

func (EchoResponder) Reply(_ context.Context, message string, lang locale.Language) (string, error) {
	prefix, ok := echoPrefix[lang]
	if !ok {
		prefix = echoPrefix[locale.DefaultLanguage]
	}
	return prefix + ": " + message, nil
}
