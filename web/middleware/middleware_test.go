package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDomainValidator(t *testing.T) {
	r := gin.New()
	r.Use(DomainValidatorMiddleware("chat.example.com"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for host, want := range map[string]int{
		"chat.example.com":      http.StatusNoContent,
		"chat.example.com:8443": http.StatusNoContent,
		"evil.example.com":      http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = host
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, host)
	}
}

func TestRequestLog_AssignsID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestLogMiddleware())
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestLog_KeepsClientID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogMiddleware("/health"))
	r.GET("/health", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
