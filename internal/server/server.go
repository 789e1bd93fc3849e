package server

import (
	"log/slog"
	"time"

	"adboard/internal/api/controller"

	"github.com/gin-gonic/gin"
)

// Server wires the controllers into a gin engine.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine and registers the routes. Paths carry
// trailing slashes to match the public API contract; gin redirects the
// slashless forms.
func NewServer(users *controller.UserController, advertisements *controller.AdvertisementController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.POST("/user/", users.Create)
	engine.GET("/user/:user_id/", users.Get)
	engine.POST("/login/", users.Login)

	engine.POST("/advertisement/", advertisements.Create)
	engine.GET("/advertisement/:advertisement_id/", advertisements.Get)
	engine.PUT("/advertisement/:advertisement_id/", advertisements.Update)
	engine.DELETE("/advertisement/:advertisement_id/", advertisements.Delete)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestLogger logs every handled request through the process-wide
// slog logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(c.Request.Context(), "request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
