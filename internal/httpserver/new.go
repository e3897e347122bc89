package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-chat-bot/config"
	"ai-chat-bot/internal/chat"
	"ai-chat-bot/internal/router"
	"ai-chat-bot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatUC  chat.UseCase
	router  router.Router
	model   string
	ui      config.UIConfig
	session config.SessionConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Chat domain
	ChatUseCase chat.UseCase
	Router      router.Router
	Model       string
	UI          config.UIConfig
	Session     config.SessionConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		chatUC:      cfg.ChatUseCase,
		router:      cfg.Router,
		model:       cfg.Model,
		ui:          cfg.UI,
		session:     cfg.Session,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.router == nil {
		return errors.New("router is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
