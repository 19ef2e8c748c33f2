package api

import (
	"designers/internal/config"
	"designers/internal/model"
	"designers/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const indexBanner = "Inicio de la API de designers"

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg  config.Config
	repo model.Repository

	// 服务层
	generationService *service.GenerationService
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, generation *service.GenerationService) *HTTPHandler {
	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		generationService: generation,
	}
}

// NewRouter wires middleware and every route onto a fresh gin engine.
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()

	// 添加中间件
	r.Use(LoggingMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/", h.Index)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	designers := r.Group("/designers")
	designers.GET("", h.ListDesigners)
	designers.POST("", h.CreateDesigner)
	designers.GET("/search", h.SearchDesigners)
	designers.GET("/:id", h.GetDesigner)

	r.POST("/generate_text", h.GenerateText)
	r.GET("/logs", h.ListLogs)

	return r
}

// Index 返回欢迎信息
func (h *HTTPHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, indexBanner)
}
