// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"
	"strings"

	"persona-gen-go/internal/config"

	"github.com/gin-gonic/gin"
)

// APIVersion 是对外公布的服务版本号。
const APIVersion = "0.1.0"

// RootHandler 处理根路径、健康检查与 API 探活请求。
type RootHandler struct {
	cfg config.Config
}

// NewRootHandler 创建一个新的 RootHandler。
func NewRootHandler(cfg config.Config) *RootHandler {
	return &RootHandler{cfg: cfg}
}

// Root 返回服务的基本信息。
func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Persona Generator API",
		"docs":    "/docs",
		"version": APIVersion,
	})
}

// Health 检查必需配置是否齐全。缺失时返回 500 并点名缺失项，
// 这样部署问题在健康检查阶段就能暴露，而不是等到第一个业务请求。
func (h *RootHandler) Health(c *gin.Context) {
	if missing := h.cfg.MissingRequired(); len(missing) > 0 {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Missing required configuration values: " + strings.Join(missing, ", "),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// APIInfo 是 /api/ 探活端点。
func (h *RootHandler) APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is working"})
}
