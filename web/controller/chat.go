package controller

import (
	"errors"
	"net/http"

	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/web/entity"
	"github.com/lingochat/lingochat/web/service"
	"github.com/lingochat/lingochat/web/session"

	"github.com/gin-gonic/gin"
)

// ChatController serves the JSON endpoints used by the chat page.
type ChatController struct {
	chatService      *service.ChatService
	translateService *service.TranslateService
}

func NewChatController(g *gin.RouterGroup, chatService *service.ChatService, translateService *service.TranslateService) *ChatController {
	a := &ChatController{chatService: chatService, translateService: translateService}
	a.initRouter(g)
	return a
}

func (a *ChatController) initRouter(g *gin.RouterGroup) {
	g.POST("/set_language", a.setLanguage)
	g.POST("/get", a.get)
	g.POST("/translate", a.translate)
	g.POST("/detect", a.detect)
}

func (a *ChatController) setLanguage(c *gin.Context) {
	var req entity.LanguageRequest
	_ = c.ShouldBindJSON(&req)

	lang, err := session.SetLanguage(session.Default(c), req.Language)
	if err != nil {
		if !errors.Is(err, session.ErrInvalidLanguage) {
			logger.Warning("Unable to save language:", err)
		}
		c.JSON(http.StatusBadRequest, entity.LanguageResponse{Status: entity.StatusError, Message: "Invalid language"})
		return
	}
	c.JSON(http.StatusOK, entity.LanguageResponse{Status: entity.StatusSuccess, Language: lang.String()})
}

func (a *ChatController) get(c *gin.Context) {
	var req entity.ChatRequest
	_ = c.ShouldBindJSON(&req)

	reply, err := a.chatService.Respond(c.Request.Context(), session.GetState(c), req.Message)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, entity.ChatResponse{Response: reply})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, entity.ChatResponse{Response: "Authentication error."})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, entity.ChatResponse{Response: "No message received."})
	default:
		logger.Error("chat response failed:", err)
		c.JSON(http.StatusBadGateway, entity.ChatResponse{Response: I18nWeb(c, "toasts.serverError")})
	}
}

func (a *ChatController) translate(c *gin.Context) {
	var req entity.TranslateRequest
	_ = c.ShouldBindJSON(&req)

	out, lang, err := a.translateService.Translate(c.Request.Context(), session.GetState(c), req.Text, req.Language)
	if err != nil {
		a.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.TranslateResponse{Translated: out, Language: lang.String()})
}

func (a *ChatController) detect(c *gin.Context) {
	var req entity.DetectRequest
	_ = c.ShouldBindJSON(&req)

	code, err := a.translateService.Detect(c.Request.Context(), session.GetState(c), req.Text)
	if err != nil {
		a.jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.DetectResponse{Language: code})
}

func (a *ChatController) jsonError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	c.JSON(status, entity.ErrorResponse{Error: err.Error()})
}
