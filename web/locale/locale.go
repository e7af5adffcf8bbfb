// Package locale holds the supported language set and the go-i18n bundle used
// to localize page text and flash messages.
package locale

import (
	"io/fs"
	"strings"

	"github.com/lingochat/lingochat/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const localizerKey = "localizer"

// Bundle wraps the parsed translation files.
type Bundle struct {
	bundle *i18n.Bundle
}

// NewBundle parses every file under the "translation" directory of fsys.
func NewBundle(fsys fs.FS) (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	err := fs.WalkDir(fsys, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		_, err = bundle.ParseMessageFileBytes(data, path)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Bundle{bundle: bundle}, nil
}

// Localizer returns a localizer preferring the given language tags in order.
func (b *Bundle) Localizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(b.bundle, langs...)
}

// Middleware stores a per-request localizer in the gin context. The session
// language wins over the Accept-Language header.
func (b *Bundle) Middleware(sessionLanguage func(c *gin.Context) Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := sessionLanguage(c)
		c.Set(localizerKey, b.Localizer(lang.String(), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	sep := "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		if len(parts) != 2 {
			continue
		}
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// I18n localizes key. Params are "name==value" pairs for template placeholders.
// A nil localizer or unknown key falls back to the key itself.
func I18n(localizer *i18n.Localizer, key string, params ...string) string {
	if localizer == nil {
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if msg == "" {
		logger.Warningf("Failed to localize message %q: %v", key, err)
		return key
	}
	// err may carry a fallback-to-English notice alongside a usable message.
	return msg
}

// FromContext returns the localizer installed by Middleware, or nil.
func FromContext(c *gin.Context) *i18n.Localizer {
	v, ok := c.Get(localizerKey)
	if !ok {
		return nil
	}
	localizer, _ := v.(*i18n.Localizer)
	return localizer
}
