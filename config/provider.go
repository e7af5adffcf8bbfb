package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ProviderConfig holds the endpoints of the external response and translation services.
type ProviderConfig struct {
	Response    ResponseProvider    `envPrefix:"RESPONSE_"`
	Translation TranslationProvider `envPrefix:"TRANSLATION_"`
}

// ResponseProvider configures the chatbot backend. An empty URL selects the
// built-in echo responder.
type ResponseProvider struct {
	URL     string        `env:"URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// TranslationProvider configures the translation and language detection service.
type TranslationProvider struct {
	Enabled bool          `env:"ENABLED" envDefault:"true"`
	URL     string        `env:"URL" envDefault:"https://translate.googleapis.com/translate_a/single"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
	// CacheTTL of 0 disables caching of translation results.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

// GetProviderConfig parses LINGOCHAT_PROVIDER_* variables.
func GetProviderConfig() (*ProviderConfig, error) {
	cfg := ProviderConfig{}
	opts := env.Options{Prefix: envPrefix + "PROVIDER_"}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse provider config: %w", err)
	}
	return &cfg, nil
}
