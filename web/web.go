// Package web provides the lingochat HTTP server: routing, sessions,
// templates, static assets and the scheduled maintenance jobs.
package web

import (
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lingochat/lingochat/caching"
	"github.com/lingochat/lingochat/config"
	"github.com/lingochat/lingochat/database"
	"github.com/lingochat/lingochat/logger"
	"github.com/lingochat/lingochat/util/common"
	"github.com/lingochat/lingochat/util/crypto"
	"github.com/lingochat/lingochat/util/random"
	"github.com/lingochat/lingochat/web/controller"
	"github.com/lingochat/lingochat/web/job"
	"github.com/lingochat/lingochat/web/locale"
	"github.com/lingochat/lingochat/web/middleware"
	"github.com/lingochat/lingochat/web/provider"
	"github.com/lingochat/lingochat/web/service"
	"github.com/lingochat/lingochat/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

//go:embed assets
var assetsFS embed.FS

//go:embed html/*
var htmlFS embed.FS

//go:embed translation/*
var i18nFS embed.FS

const sessionCookieName = "lingochat"

var startTime = time.Now()

type wrapAssetsFS struct {
	embed.FS
}

func (f *wrapAssetsFS) Open(name string) (fs.File, error) {
	file, err := f.FS.Open("assets/" + name)
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFile{File: file}, nil
}

type wrapAssetsFile struct {
	fs.File
}

func (f *wrapAssetsFile) Stat() (fs.FileInfo, error) {
	info, err := f.File.Stat()
	if err != nil {
		return nil, err
	}
	return &wrapAssetsFileInfo{FileInfo: info}, nil
}

// wrapAssetsFileInfo reports the process start as the modification time,
// since embedded files carry none and browsers need it for caching.
type wrapAssetsFileInfo struct {
	fs.FileInfo
}

func (f *wrapAssetsFileInfo) ModTime() time.Time {
	return startTime
}

// Options carries the collaborators the server is assembled from.
type Options struct {
	DB        *gorm.DB
	Hasher    crypto.Hasher
	Responder provider.Responder
	// Translator may be nil; translation then echoes input and detection returns "en".
	Translator provider.Translator

	SessionSecret string
	// SessionMaxAge is in minutes; 0 gives a browser-session cookie.
	SessionMaxAge int
	Domain        string
	Listen        string
	Port          int
	CertFile      string
	KeyFile       string
}

// DefaultOptions builds Options from the environment and the open database.
func DefaultOptions() (Options, error) {
	providerCfg, err := config.GetProviderConfig()
	if err != nil {
		return Options{}, err
	}

	var responder provider.Responder = provider.EchoResponder{}
	if providerCfg.Response.URL != "" {
		responder = provider.NewHTTPResponder(provider.HTTPResponderConfig{
			URL:     providerCfg.Response.URL,
			APIKey:  providerCfg.Response.APIKey,
			Timeout: providerCfg.Response.Timeout,
		})
	} else {
		logger.Warning("no response provider configured, replies will echo the message")
	}

	var translator provider.Translator
	if providerCfg.Translation.Enabled {
		translator = provider.NewGoogleTranslator(provider.GoogleTranslatorConfig{
			URL:     providerCfg.Translation.URL,
			Timeout: providerCfg.Translation.Timeout,
		})
		if ttl := providerCfg.Translation.CacheTTL; ttl > 0 {
			translator = provider.NewCachedTranslator(translator, caching.NewCache(ttl))
		}
	}

	return Options{
		DB:            database.GetDB(),
		Hasher:        crypto.BcryptHasher{},
		Responder:     responder,
		Translator:    translator,
		SessionSecret: config.GetSessionSecret(),
		SessionMaxAge: config.GetSessionMaxAge(),
		Domain:        config.GetWebDomain(),
		Listen:        config.GetListen(),
		Port:          config.GetPort(),
		CertFile:      config.GetCertFile(),
		KeyFile:       config.GetKeyFile(),
	}, nil
}

// Server is the lingochat web server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	opts Options

	index *controller.IndexController
	chat  *controller.ChatController

	userService      *service.UserService
	chatService      *service.ChatService
	translateService *service.TranslateService

	cron *cron.Cron
}

// NewServer wires the services from opts. Nothing listens until Start.
func NewServer(opts Options) *Server {
	return &Server{
		opts:             opts,
		userService:      service.NewUserService(opts.DB, opts.Hasher),
		chatService:      service.NewChatService(opts.Responder),
		translateService: service.NewTranslateService(provider.NewBestEffortTranslator(opts.Translator)),
	}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

func (s *Server) newSessionStore() sessions.Store {
	secret := s.opts.SessionSecret
	if secret == "" {
		logger.Warning("session secret not set, generating a random one; sessions end on restart")
		secret = random.Seq(32)
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

// initRouter registers middleware, templates, static assets and controllers.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogMiddleware("/health"))

	if s.opts.Domain != "" {
		engine.Use(middleware.DomainValidatorMiddleware(s.opts.Domain))
	}

	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(sessions.Sessions(sessionCookieName, s.newSessionStore()))

	bundle, err := locale.NewBundle(i18nFS)
	if err != nil {
		return nil, err
	}
	engine.Use(bundle.Middleware(session.GetLanguageFromContext))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)
	engine.StaticFS("/assets", http.FS(&wrapAssetsFS{FS: assetsFS}))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := engine.Group("/")
	s.index = controller.NewIndexController(g, s.userService, s.opts.SessionMaxAge)
	s.chat = controller.NewChatController(g, s.chatService, s.translateService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

func (s *Server) startTask() {
	if _, err := s.cron.AddJob("@hourly", job.NewCheckpointJob()); err != nil {
		logger.Warning("add checkpoint job failed:", err)
	}
}

// Start begins serving in the background.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(s.opts.Listen, strconv.Itoa(s.opts.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	if s.opts.CertFile != "" || s.opts.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(s.opts.CertFile, s.opts.KeyFile)
		if err != nil {
			_ = listener.Close()
			return fmt.Errorf("load certificates: %w", err)
		}
		cfg := &tls.Config{Certificates: []tls.Certificate{cert}}
		listener = tls.NewListener(listener, cfg)
		logger.Info("Web server running HTTPS on", listener.Addr())
	} else {
		logger.Info("Web server running HTTP on", listener.Addr())
	}

	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server stopped:", err)
		}
	}()

	s.startTask()

	return nil
}

// Stop shuts down the HTTP server and the scheduler.
func (s *Server) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err1 = s.httpServer.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
		if common.IsClosedConnErr(err2) {
			err2 = nil
		}
	}
	return common.Combine(err1, err2)
}

// Addr returns the bound listener address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}
