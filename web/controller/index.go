package controller

import (
	"errors"
	"net/http"
	"text/template"

	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/web/entity"
	"github.com/lingochat/lingochat/web/service"
	"github.com/lingochat/lingochat/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles the chat page and the register, login and logout routes.
type IndexController struct {
	BaseController

	userService *service.UserService
	// sessionMaxAge is in minutes.
	sessionMaxAge int
}

// NewIndexController creates a new IndexController and registers its routes.
func NewIndexController(g *gin.RouterGroup, userService *service.UserService, sessionMaxAge int) *IndexController {
	a := &IndexController{userService: userService, sessionMaxAge: sessionMaxAge}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.checkLogin, a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/logout", a.logout)
}

func (a *IndexController) index(c *gin.Context) {
	user := session.GetLoginUser(c)
	html(c, "index.html", "pages.chat.title", gin.H{
		"username": user.Username,
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "login.html", "pages.login.title", nil)
}

func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	html(c, "register.html", "pages.register.title", nil)
}

func (a *IndexController) register(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, session.FlashError, "toasts.emptyCredentials")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	_, err := a.userService.Register(form.Username, form.Password)
	switch {
	case err == nil:
		addFlash(c, session.FlashSuccess, "toasts.registered")
		c.Redirect(http.StatusFound, loginPath)
	case errors.Is(err, service.ErrDuplicateUsername):
		addFlash(c, session.FlashError, "toasts.usernameExists")
		c.Redirect(http.StatusFound, "/register")
	case errors.Is(err, service.ErrInvalidInput):
		addFlash(c, session.FlashError, "toasts.emptyCredentials")
		c.Redirect(http.StatusFound, "/register")
	default:
		logger.Error("register failed:", err)
		addFlash(c, session.FlashError, "toasts.serverError")
		c.Redirect(http.StatusFound, "/register")
	}
}

func (a *IndexController) login(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		addFlash(c, session.FlashError, "toasts.wrongCredentials")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	safeUser := template.HTMLEscapeString(form.Username)
	user, err := a.userService.CheckUser(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warningf("wrong username or password for %q, IP: %q", safeUser, getRemoteIp(c))
			addFlash(c, session.FlashError, "toasts.wrongCredentials")
		} else {
			addFlash(c, session.FlashError, "toasts.serverError")
		}
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	session.SetMaxAge(c, a.sessionMaxAge*60)
	s := session.Default(c)
	if err := session.Login(s, session.Identity{UserId: user.Id, Username: user.Username}); err != nil {
		logger.Warning("Unable to save session:", err)
		addFlash(c, session.FlashError, "toasts.serverError")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	logger.Infof("%s logged in successfully, Ip Address: %s", safeUser, getRemoteIp(c))
	addFlash(c, session.FlashSuccess, "toasts.loginSuccess")
	c.Redirect(http.StatusFound, "/")
}

// logout always succeeds, including for sessions that were never logged in.
func (a *IndexController) logout(c *gin.Context) {
	s := session.Default(c)
	if user := session.GetIdentity(s); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.Clear(s); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	addFlash(c, session.FlashInfo, "toasts.loggedOut")
	c.Redirect(http.StatusFound, loginPath)
}
