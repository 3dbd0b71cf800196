package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/andriskumpel/combate-desinformacao/docs"
	"github.com/andriskumpel/combate-desinformacao/internal/config"
)

// New builds the gin engine with every route mounted.
func New(cfg *config.Config, svc VerificationService, logger *slog.Logger) *gin.Engine {
	g := gin.New()
	g.Use(gin.Recovery(), requestLogger(logger), recordMetrics())
	g.MaxMultipartMemory = cfg.HTTP.MaxUploadBytes

	g.Use(cors.New(corsConfig(cfg.HTTP.AllowOrigins)))

	docs.SwaggerInfo.Title = cfg.Project.Name
	docs.SwaggerInfo.Version = cfg.Project.Version
	docs.SwaggerInfo.BasePath = cfg.Project.APIPrefix

	info := NewInfo(cfg.Project)
	h := NewVerifications(svc, cfg.HTTP.MaxUploadBytes)

	g.GET("/", info.Root)
	g.GET("/healthz", info.Health)
	g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	g.GET("/docs/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	v1 := g.Group(cfg.Project.APIPrefix)
	{
		v1.POST("/verify", h.Verify)
		v1.POST("/verify/file", h.VerifyFile)
		v1.GET("/status/:verification_id", h.Status)
		v1.GET("/verifications", h.List)
		v1.DELETE("/verifications/:verification_id", h.Delete)
	}

	return g
}

// NewHTTPServer wraps the engine with the configured timeouts.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}
}

// corsConfig allows every origin when the list holds "*". Credentials are
// only allowed for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
