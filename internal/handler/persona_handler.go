package handler

import (
	"net/http"
	"strconv"

	"persona-gen-go/internal/model"
	"persona-gen-go/internal/service"
	"persona-gen-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// 列表端点未指定 limit 时的默认值。
const defaultListLimit = 10

// PersonaHandler 处理画像相关的 API 请求。
type PersonaHandler struct {
	service service.PersonaService
}

// NewPersonaHandler 创建一个新的 PersonaHandler。
func NewPersonaHandler(service service.PersonaService) *PersonaHandler {
	return &PersonaHandler{service: service}
}

// CreatePersonaRequest 定义了画像创建 API 的请求体结构。
type CreatePersonaRequest struct {
	UserEmail   string                 `json:"user_email"`
	InitialData []model.QuestionAnswer `json:"initial_data" binding:"required,dive"`
}

// CreatePersona 处理画像创建请求。
// 合成或入库失败仍返回 200，错误以响应体内的判别字段表达（软失败契约）。
func (h *PersonaHandler) CreatePersona(c *gin.Context) {
	var req CreatePersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreatePersona: invalid request payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload: " + err.Error()})
		return
	}

	result := h.service.Generate(c.Request.Context(), req.InitialData, req.UserEmail)
	c.JSON(http.StatusOK, result)
}

// GetPersona 按 id 返回画像。
func (h *PersonaHandler) GetPersona(c *gin.Context) {
	id := c.Param("personaId")

	persona, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Error("GetPersona: lookup failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error retrieving persona"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Persona not found"})
		return
	}

	c.JSON(http.StatusOK, persona)
}

// ListPersonas 按创建时间倒序列出画像，支持 user_id 过滤与 limit 截断。
func (h *PersonaHandler) ListPersonas(c *gin.Context) {
	userID := c.Query("user_id")
	limit := defaultListLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	personas, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		log.Error("ListPersonas: list failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error listing personas"})
		return
	}

	c.JSON(http.StatusOK, personas)
}
