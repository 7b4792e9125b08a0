package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"site-contact/pkg/config"
	"site-contact/pkg/middleware"
)

// ContactPath is where the website form posts submissions
const ContactPath = "/api/contact"

// NewRouter wires middleware and routes onto a fresh gin engine
func NewRouter(handlers *Handlers, cfg *config.Config, l *zap.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.Recovery(l, gin.H{"message": MsgServerError}),
		middleware.CORS(cfg.AllowedOrigins),
	)

	router.POST(ContactPath, handlers.HandleContact)
	router.GET("/health", handlers.HealthCheck)
	router.HEAD("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoMethod(handlers.MethodNotAllowed)
	router.NoRoute(handlers.NotFound)

	return router
}
