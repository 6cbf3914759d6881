// Package service 包含了应用的业务逻辑层。
package service

import (
	"context"
	"time"

	"persona-gen-go/internal/model"
	"persona-gen-go/internal/repository"
	"persona-gen-go/pkg/log"
	"persona-gen-go/pkg/scraper"
	"persona-gen-go/pkg/webhook"

	"github.com/google/uuid"
)

// 画像创建错误的判别值。错误以 200 响应体内嵌的方式返回（软失败），
// 调用方通过 error 字段区分分支，而不是 HTTP 状态码。
const (
	ErrKindSynthesisFailed = "synthesis_failed"
	ErrKindStorageFailed   = "storage_failed"
)

// AnonymousUserID 是未提供用户标识时的占位值。
const AnonymousUserID = "anonymous"

// PersonaResult 是画像创建的带判别结果：要么 {persona, id}，要么 {error, message}。
// 两个分支序列化成同一形状，便于客户端和测试只看判别字段。
type PersonaResult struct {
	Persona *model.Persona `json:"persona,omitempty"`
	ID      string         `json:"id,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// OK 报告结果是否为成功分支。
func (r PersonaResult) OK() bool {
	return r.Error == ""
}

// PersonaService 定义了画像流水线的业务接口。
type PersonaService interface {
	// Generate 执行 抓取 -> 合成 -> 入库 流水线。
	// 合成或入库失败不返回 error，而是携带判别值的软失败结果。
	Generate(ctx context.Context, answers []model.QuestionAnswer, userID string) PersonaResult
	Get(ctx context.Context, id string) (model.Persona, bool, error)
	List(ctx context.Context, userID string, limit int) ([]model.Persona, error)
}

type personaService struct {
	repo    repository.PersonaRepository
	scraper scraper.Client
	hook    webhook.Client
}

// NewPersonaService 创建一个新的 PersonaService。
func NewPersonaService(repo repository.PersonaRepository, scraperClient scraper.Client, hook webhook.Client) PersonaService {
	return &personaService{repo: repo, scraper: scraperClient, hook: hook}
}

// Generate 实现画像创建流水线。
func (s *personaService) Generate(ctx context.Context, answers []model.QuestionAnswer, userID string) PersonaResult {
	// 1. 可选的博客风格抓取。抓取失败静默降级为空记录：
	//    风格信号只是补充输入，画像合成必须能在没有它时继续。
	style := s.scrapeBlogStyle(ctx, answers)

	// 2/3. 携带完整问卷与风格记录调用合成 webhook
	synthesis, err := s.hook.SynthesizePersona(ctx, answers, style)
	if err != nil {
		log.Error("画像合成失败", err)
		return PersonaResult{
			Error:   ErrKindSynthesisFailed,
			Message: "Failed to generate persona: " + err.Error(),
		}
	}

	if userID == "" {
		userID = AnonymousUserID
	}

	// 4. 组装文档并写入
	persona := model.Persona{
		ID:               uuid.NewString(),
		UserID:           userID,
		CreatedAt:        time.Now().UTC(),
		Goals:            synthesis.Goals,
		ToneOfVoice:      synthesis.ToneOfVoice,
		KeyTopics:        synthesis.KeyTopics,
		Values:           synthesis.Values,
		PreferredFormats: synthesis.PreferredFormats,
		TargetAudience:   synthesis.TargetAudience,
		PersonaSummary:   synthesis.PersonaSummary,
		RawQuestionaries: answers,
	}

	if err := s.repo.Put(ctx, persona); err != nil {
		log.Error("画像入库失败", err)
		return PersonaResult{
			Error:   ErrKindStorageFailed,
			Message: "Persona generated but not stored: " + err.Error(),
		}
	}

	log.Infof("画像创建成功, id: %s, user_id: %s", persona.ID, persona.UserID)
	return PersonaResult{Persona: &persona, ID: persona.ID}
}

// scrapeBlogStyle 在问卷中找 blog_url 并抓取风格记录；没有或失败都返回空记录。
func (s *personaService) scrapeBlogStyle(ctx context.Context, answers []model.QuestionAnswer) model.StyleProfile {
	var blogURL string
	for _, qa := range answers {
		if qa.QuestionID == model.QuestionBlogURL {
			blogURL = qa.Answer
			break
		}
	}
	if blogURL == "" {
		return model.StyleProfile{}
	}

	style, err := s.scraper.ExtractStyle(ctx, blogURL)
	if err != nil {
		log.Warnf("博客风格抓取失败，使用空记录继续: %v", err)
		return model.StyleProfile{}
	}
	return style
}

// Get 按 id 获取画像。
func (s *personaService) Get(ctx context.Context, id string) (model.Persona, bool, error) {
	return s.repo.Get(ctx, id)
}

// List 按创建时间倒序列出画像。
func (s *personaService) List(ctx context.Context, userID string, limit int) ([]model.Persona, error) {
	return s.repo.List(ctx, userID, limit)
}
