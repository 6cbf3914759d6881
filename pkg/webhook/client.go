// Package webhook 提供了调用外部自动化 webhook 的客户端，
// 画像合成与帖子生成分别对应两个不同的 webhook 地址。
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"persona-gen-go/internal/config"
	"persona-gen-go/internal/model"
	"persona-gen-go/pkg/log"
)

// Client 定义了两个合成 webhook 的调用接口。
type Client interface {
	// SynthesizePersona 把完整问卷与（可能为空的）风格记录发给画像合成 webhook。
	SynthesizePersona(ctx context.Context, answers []model.QuestionAnswer, style model.StyleProfile) (*PersonaSynthesis, error)
	// GeneratePost 把组装好的生成请求发给帖子生成 webhook，返回 post_suggestions。
	GeneratePost(ctx context.Context, req PostGenerationRequest) ([]string, error)
}

type makeClient struct {
	cfg config.WebhookConfig
	// 画像合成调用不设超时：上游 LLM 场景耗时不可预估，由传输层自行兜底
	client *http.Client
	// 帖子生成调用带固定墙钟超时
	postClient *http.Client
}

// NewClient 创建一个新的 webhook 客户端。
func NewClient(cfg config.WebhookConfig) Client {
	timeout := time.Duration(cfg.PostTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &makeClient{
		cfg:        cfg,
		client:     &http.Client{},
		postClient: &http.Client{Timeout: timeout},
	}
}

// PersonaSynthesis 是画像合成 webhook 返回的类型化响应。
// 上游响应缺键或形状不符会在解析时直接失败，而不是把空洞传导到下游。
type PersonaSynthesis struct {
	Goals            []string `json:"goals"`
	TargetAudience   string   `json:"target_audience"`
	ToneOfVoice      []string `json:"tone_of_voice"`
	KeyTopics        []string `json:"key_topics"`
	Values           []string `json:"values"`
	PreferredFormats []string `json:"preferred_formats"`
	PersonaSummary   string   `json:"persona_summary"`
}

type personaSynthesisRequest struct {
	Questionaries []model.QuestionAnswer `json:"questionaries"`
	BlogData      model.StyleProfile     `json:"blog_data"`
}

// GenerationParameters 控制帖子生成行为。
type GenerationParameters struct {
	Variations  int     `json:"variations"`
	Temperature float64 `json:"temperature"`
}

// RequestContext 是随帖子生成请求附带的上下文块。
type RequestContext struct {
	CurrentDateTime string  `json:"current_date_time"`
	Location        *string `json:"location"`
}

// PostGenerationRequest 是发往帖子生成 webhook 的请求体（"request" 包裹前）。
type PostGenerationRequest struct {
	RequestDetails       map[string]interface{} `json:"request_details"`
	UserInfo             map[string]string      `json:"user_info"`
	GenerationParameters GenerationParameters   `json:"generation_parameters"`
	Context              RequestContext         `json:"context"`
	Persona              *model.Persona         `json:"persona,omitempty"`
}

type postGenerationEnvelope struct {
	Request PostGenerationRequest `json:"request"`
}

type postGenerationResponse struct {
	PostSuggestions []string `json:"post_suggestions"`
}

// SynthesizePersona 同步调用画像合成 webhook 并解析类型化结果。
func (c *makeClient) SynthesizePersona(ctx context.Context, answers []model.QuestionAnswer, style model.StyleProfile) (*PersonaSynthesis, error) {
	if c.cfg.PersonaURL == "" {
		return nil, fmt.Errorf("missing persona webhook URL configuration")
	}

	body := personaSynthesisRequest{Questionaries: answers, BlogData: style}
	raw, err := c.post(ctx, c.client, c.cfg.PersonaURL, body)
	if err != nil {
		return nil, err
	}

	var synthesis PersonaSynthesis
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &synthesis); err != nil {
		return nil, fmt.Errorf("failed to parse persona webhook response: %w", err)
	}
	return &synthesis, nil
}

// GeneratePost 调用帖子生成 webhook，返回建议文案列表（可能为空）。
func (c *makeClient) GeneratePost(ctx context.Context, req PostGenerationRequest) ([]string, error) {
	if c.cfg.PostURL == "" {
		return nil, fmt.Errorf("missing webhook URL configuration")
	}

	raw, err := c.post(ctx, c.postClient, c.cfg.PostURL, postGenerationEnvelope{Request: req})
	if err != nil {
		return nil, err
	}

	var resp postGenerationResponse
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse post webhook response: %w", err)
	}
	if resp.PostSuggestions == nil {
		return []string{}, nil
	}
	return resp.PostSuggestions, nil
}

// post 发送 JSON 请求并返回原始响应文本。
func (c *makeClient) post(ctx context.Context, client *http.Client, url string, payload interface{}) (string, error) {
	reqBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal webhook request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-make-apikey", c.cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Errorf("[WebhookClient] 调用 webhook 失败: %v", err)
		return "", fmt.Errorf("failed to call webhook: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read webhook response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Errorf("[WebhookClient] webhook 返回非 200 状态码: %s", resp.Status)
		return "", fmt.Errorf("webhook returned non-200 status: %s, body: %s", resp.Status, string(bodyBytes))
	}

	return string(bodyBytes), nil
}
