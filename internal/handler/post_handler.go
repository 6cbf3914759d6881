package handler

import (
	"errors"
	"net/http"
	"strconv"

	"persona-gen-go/internal/service"
	"persona-gen-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// PostHandler 处理帖子相关的 API 请求。
type PostHandler struct {
	service service.PostService
}

// NewPostHandler 创建一个新的 PostHandler。
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePostRequest 定义了帖子创建 API 的请求体结构。
// 枚举值与参数边界沿用既有对外契约。
type CreatePostRequest struct {
	Platform            string  `json:"platform" binding:"required,oneof=Twitter LinkedIn Facebook Instagram Youtube Blog"`
	ContentType         string  `json:"content_type" binding:"required,oneof=Post Thread Article 'Video Script' Story Caption"`
	Tone                string  `json:"tone" binding:"required"`
	PersonaID           string  `json:"persona_id"`
	CoreMessage         string  `json:"core_message"`
	NumberOfSuggestions int     `json:"number_of_suggestions" binding:"omitempty,min=1,max=5"`
	Temperature         float64 `json:"temperature" binding:"omitempty,min=0.1,max=1"`
}

// CreatePost 处理帖子生成请求。
// 与画像创建不同，这里的上游失败按硬错误返回（404/500）。
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreatePost: invalid request payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request payload: " + err.Error()})
		return
	}

	// 未提供时的默认生成参数
	if req.NumberOfSuggestions == 0 {
		req.NumberOfSuggestions = 2
	}
	if req.Temperature == 0 {
		req.Temperature = 0.75
	}

	post, err := h.service.Create(c.Request.Context(), service.CreatePostInput{
		Platform:            req.Platform,
		ContentType:         req.ContentType,
		Tone:                req.Tone,
		PersonaID:           req.PersonaID,
		CoreMessage:         req.CoreMessage,
		NumberOfSuggestions: req.NumberOfSuggestions,
		Temperature:         req.Temperature,
	})
	if err != nil {
		if errors.Is(err, service.ErrPersonaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
		log.Error("CreatePost: generation failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generating post content: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPost 按 id 返回帖子。
func (h *PostHandler) GetPost(c *gin.Context) {
	id := c.Param("postId")

	post, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		log.Error("GetPost: lookup failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error retrieving post"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListPosts 按创建时间倒序列出帖子，支持 user_id 过滤与 limit 截断。
func (h *PostHandler) ListPosts(c *gin.Context) {
	userID := c.Query("user_id")
	limit := defaultListLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	posts, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		log.Error("ListPosts: list failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error listing posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
