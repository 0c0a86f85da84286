package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vibe-gaming/clan-api/docs"
	"github.com/vibe-gaming/clan-api/pkg/limiter"
	"github.com/vibe-gaming/clan-api/pkg/logger"
	"github.com/vibe-gaming/clan-api/pkg/validator"

	internalV1 "github.com/vibe-gaming/clan-api/internal/api/http/internal/v1"
	"github.com/vibe-gaming/clan-api/internal/config"
	"github.com/vibe-gaming/clan-api/internal/metrics"
	"github.com/vibe-gaming/clan-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	store    Pinger
	registry *prometheus.Registry
}

func NewHandlers(services *service.Services, store Pinger, registry *prometheus.Registry) *Handler {
	return &Handler{
		services: services,
		store:    store,
		registry: registry,
	}
}

// Init builds the router. Background work started for it stops when ctx is done.
func (h *Handler) Init(ctx context.Context, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		ginzap.Ginzap(logger.Logger(), time.RFC3339, true),
		metrics.NewHTTP(h.registry).Middleware(),
		limiter.Limit(ctx, cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.CORSOrigins),
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler(h.registry)))
	router.GET("/healthz", h.healthz)

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.services)
	api := router.Group("/")
	internalHandlersV1.Init(api)
}

func (h *Handler) healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.PingContext(ctx); err != nil {
		logger.Warn("health check failed", zap.Error(err))
		c.String(http.StatusServiceUnavailable, "unavailable")
		return
	}
	c.String(http.StatusOK, "ok")
}
