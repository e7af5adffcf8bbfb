package controller

import (
	"net"
	"net/http"
	"strings"

	"github.com/lingochat/lingochat/config"
	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/web/locale"
	"github.com/lingochat/lingochat/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the client address, preferring proxy headers.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return strings.TrimSpace(ips[0])
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

type flashView struct {
	Kind string
	Text string
}

// html renders a template with the common page data: title, flashes,
// language list and an i18n function callable as {{call .i18n "key"}}.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	localizer := locale.FromContext(c)
	data["i18n"] = func(key string, params ...string) string {
		return locale.I18n(localizer, key, params...)
	}
	data["title"] = locale.I18n(localizer, title)
	data["flashes"] = popFlashes(c)
	data["languages"] = locale.SupportedLanguages()
	data["language"] = session.GetLanguageFromContext(c)
	data["request_uri"] = c.Request.RequestURI
	c.HTML(http.StatusOK, name, getContext(data))
}

func popFlashes(c *gin.Context) []flashView {
	flashes, err := session.PopFlashes(session.Default(c))
	if err != nil {
		logger.Warning("Unable to clear flash messages:", err)
	}
	views := make([]flashView, 0, len(flashes))
	for _, f := range flashes {
		views = append(views, flashView{Kind: string(f.Kind), Text: I18nWeb(c, f.Key)})
	}
	return views
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"cur_ver": config.GetVersion(),
		"app":     config.GetName(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}
