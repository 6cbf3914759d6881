package handler

import (
	"net/http"

	"persona-gen-go/internal/model"

	"github.com/gin-gonic/gin"
)

// QuestionHandler 处理问卷目录相关的 API 请求。
type QuestionHandler struct{}

// NewQuestionHandler 创建一个新的 QuestionHandler。
func NewQuestionHandler() *QuestionHandler {
	return &QuestionHandler{}
}

// GetQuestions 返回静态问卷目录。
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": model.PersonaCreationQuestions})
}
