package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"translation/translate.en.toml": {Data: []byte(`"greet" = "Hello, {{.Name}}"
"bye" = "Goodbye"
`)},
		"translation/translate.hi.toml": {Data: []byte(`"greet" = "नमस्ते, {{.Name}}"
`)},
	}
	b, err := NewBundle(fsys)
	require.NoError(t, err)
	return b
}

func TestParseLanguage(t *testing.T) {
	for _, code := range []string{"en", "te", "hi", "ta", "ml", "kn"} {
		lang, ok := ParseLanguage(code)
		assert.True(t, ok, code)
		assert.Equal(t, code, lang.String())
		assert.NotEmpty(t, lang.DisplayName())
	}
	for _, code := range []string{"", "fr", "EN", " en", "english"} {
		_, ok := ParseLanguage(code)
		assert.False(t, ok, code)
	}
}

func TestSupportedLanguages_Copy(t *testing.T) {
	langs := SupportedLanguages()
	require.Len(t, langs, 6)
	assert.Equal(t, DefaultLanguage, langs[0])

	langs[0] = "xx"
	assert.Equal(t, English, SupportedLanguages()[0])
}

func TestI18n(t *testing.T) {
	b := testBundle(t)

	assert.Equal(t, "नमस्ते, Asha", I18n(b.Localizer("hi"), "greet", "Name==Asha"))
	assert.Equal(t, "Goodbye", I18n(b.Localizer("hi"), "bye"))
	assert.Equal(t, "missing.key", I18n(b.Localizer("en"), "missing.key"))
	assert.Equal(t, "greet", I18n(nil, "greet"))
}

func TestMiddleware_SessionLanguageWins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := testBundle(t)

	var got string
	r := gin.New()
	r.Use(b.Middleware(func(*gin.Context) Language { return Hindi }))
	r.GET("/", func(c *gin.Context) {
		got = I18n(FromContext(c), "greet", "Name==Ravi")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "नमस्ते, Ravi", got)
}

func TestCreateTemplateData(t *testing.T) {
	data := createTemplateData([]string{"a==1", "bad", "b==x==y"})
	assert.Equal(t, map[string]any{"a": "1", "b": "x==y"}, data)
}
