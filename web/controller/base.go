// Package controller provides the HTTP handlers of lingochat: account pages,
// the chat page and its JSON endpoints.
package controller

import (
	"net/http"

	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/web/locale"
	"github.com/lingochat/lingochat/web/session"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

// BaseController provides the login check shared by page controllers.
type BaseController struct{}

// checkLogin redirects anonymous page requests to the login form.
func (a *BaseController) checkLogin(c *gin.Context) {
	if session.IsLogin(c) {
		c.Next()
		return
	}
	addFlash(c, session.FlashInfo, "toasts.loginRequired")
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// I18nWeb localizes name with the request's localizer.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	return locale.I18n(locale.FromContext(c), name, params...)
}

func addFlash(c *gin.Context, kind session.FlashKind, key string) {
	if err := session.AddFlash(session.Default(c), kind, key); err != nil {
		logger.Warning("Unable to save flash message:", err)
	}
}
