package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"persona-gen-go/internal/model"
	"persona-gen-go/internal/repository"
	"persona-gen-go/pkg/log"
	"persona-gen-go/pkg/webhook"

	"github.com/google/uuid"
)

// ErrPersonaNotFound 表示请求引用的画像不存在，handler 层映射为 404。
var ErrPersonaNotFound = errors.New("persona not found")

// CreatePostInput 是帖子生成流水线的输入参数，已经过 handler 层校验。
type CreatePostInput struct {
	Platform            string
	ContentType         string
	Tone                string
	PersonaID           string
	CoreMessage         string
	NumberOfSuggestions int
	Temperature         float64
}

// PostService 定义了帖子流水线的业务接口。
// 与画像流水线不同，这里任何上游失败都作为硬错误返回（HTTP 500），
// 两条流水线的失败策略差异是对既有客户端契约的刻意保留。
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (model.Post, error)
	Get(ctx context.Context, id string) (model.Post, bool, error)
	List(ctx context.Context, userID string, limit int) ([]model.Post, error)
}

type postService struct {
	posts    repository.PostRepository
	personas repository.PersonaRepository
	hook     webhook.Client
}

// NewPostService 创建一个新的 PostService。
func NewPostService(posts repository.PostRepository, personas repository.PersonaRepository, hook webhook.Client) PostService {
	return &postService{posts: posts, personas: personas, hook: hook}
}

// Create 实现帖子生成流水线：查画像 -> 组装请求 -> webhook -> 入库。
func (s *postService) Create(ctx context.Context, input CreatePostInput) (model.Post, error) {
	// 1. 引用校验：persona_id 给了但查不到就直接失败
	var persona *model.Persona
	if input.PersonaID != "" {
		p, found, err := s.personas.Get(ctx, input.PersonaID)
		if err != nil {
			return model.Post{}, fmt.Errorf("failed to look up persona: %w", err)
		}
		if !found {
			return model.Post{}, fmt.Errorf("%w with ID: %s", ErrPersonaNotFound, input.PersonaID)
		}
		persona = &p
	}

	// 2. 从画像的原始问卷中提取用户信息，缺失的字段直接省略
	userInfo := map[string]string{}
	var userEmail string
	if persona != nil {
		userEmail = persona.AnswerByID(model.QuestionUserEmail)
		if userEmail != "" {
			userInfo["email"] = userEmail
		}
		if position := persona.AnswerByID(model.QuestionCurrentRole, model.QuestionJobTitle); position != "" {
			userInfo["position"] = position
		}
		if company := persona.AnswerByID(model.QuestionCompanyName); company != "" {
			userInfo["company"] = company
		}
	}

	// 3. 组装 webhook 请求，request_details 只带非空字段
	requestDetails := map[string]interface{}{
		"target_platform": input.Platform,
	}
	if input.CoreMessage != "" {
		requestDetails["core_message"] = input.CoreMessage
	}

	hookReq := webhook.PostGenerationRequest{
		RequestDetails: requestDetails,
		UserInfo:       userInfo,
		GenerationParameters: webhook.GenerationParameters{
			Variations:  input.NumberOfSuggestions,
			Temperature: input.Temperature,
		},
		Context: webhook.RequestContext{
			CurrentDateTime: time.Now().UTC().Format(time.RFC3339),
		},
		// JSON 编码会把画像的时间字段渲染成 ISO-8601 字符串
		Persona: persona,
	}

	// 4. 调用帖子生成 webhook，传输层失败即硬失败
	suggestions, err := s.hook.GeneratePost(ctx, hookReq)
	if err != nil {
		return model.Post{}, fmt.Errorf("error communicating with webhook: %w", err)
	}

	// 5. 组装并入库
	userID := userEmail
	if userID == "" {
		userID = AnonymousUserID
	}

	post := model.Post{
		ID:             uuid.NewString(),
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
		Platform:       input.Platform,
		ContentType:    input.ContentType,
		Tone:           input.Tone,
		PersonaID:      input.PersonaID,
		Suggestions:    suggestions,
		RequestDetails: requestDetails,
		RawRequest:     hookReq,
	}

	if err := s.posts.Put(ctx, post); err != nil {
		return model.Post{}, fmt.Errorf("failed to store post: %w", err)
	}

	log.Infof("帖子创建成功, id: %s, user_id: %s, suggestions: %d", post.ID, post.UserID, len(post.Suggestions))
	return post, nil
}

// Get 按 id 获取帖子。
func (s *postService) Get(ctx context.Context, id string) (model.Post, bool, error) {
	return s.posts.Get(ctx, id)
}

// List 按创建时间倒序列出帖子。
func (s *postService) List(ctx context.Context, userID string, limit int) ([]model.Post, error) {
	return s.posts.List(ctx, userID, limit)
}
