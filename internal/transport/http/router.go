package rest

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики витрины и бэк-офиса менеджера.
type Handler struct {
	store      ports.StorefrontService
	office     ports.BackofficeService
	log        ports.Logger
	reqTimeout time.Duration
}

// NewHandler — reqTimeout <= 0 означает «без отдельного таймаута на запрос».
func NewHandler(
	store ports.StorefrontService,
	office ports.BackofficeService,
	log ports.Logger,
	reqTimeout time.Duration,
) *Handler {
	return &Handler{store: store, office: office, log: log, reqTimeout: reqTimeout}
}

// NewRouter — gin-роутер с middleware (recovery, otel, request id, логирование).
// otelServiceName == "" — трейсинг выключен.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/banners", h.listBanners)
	api.GET("/products", h.listProducts)
	api.POST("/order", h.registerOrder)

	manager := r.Group("/manager", h.managerAuth())
	manager.POST("/login", h.login)
	manager.GET("/restaurants", h.listRestaurants)
	manager.GET("/products", h.productMatrix)
	manager.GET("/orders", h.ordersPage)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.reqTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.reqTimeout)
}
