package httpserver

import (
	"context"

	"ai-chat-bot/internal/middleware"
	"ai-chat-bot/internal/model"
	"ai-chat-bot/internal/test"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.session)

	if err := srv.setupChatDomain(ctx, mw); err != nil {
		return err
	}

	// Debug routes never reach production.
	if srv.environment != string(model.EnvironmentProduction) {
		th := test.New(srv.l, srv.router, srv.model)
		srv.gin.POST("/test/classify", th.HandleClassify)
		srv.gin.GET("/test/health", th.HandleHealthCheck)
		srv.l.Infof(ctx, "Test routes registered at /test (environment=%s)", srv.environment)
	}

	return nil
}
