// Package scraper 提供了调用第三方内容抽取 API 的客户端，
// 从博客 URL 中提取写作风格信号。
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"persona-gen-go/internal/config"
	"persona-gen-go/internal/model"
	"persona-gen-go/pkg/log"
)

// Client 定义了博客风格抽取的接口。
type Client interface {
	ExtractStyle(ctx context.Context, url string) (model.StyleProfile, error)
}

type firecrawlClient struct {
	cfg    config.ScraperConfig
	client *http.Client
}

// NewClient 创建一个新的抽取客户端。
func NewClient(cfg config.ScraperConfig) Client {
	return &firecrawlClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

const extractPrompt = "Extract the author's writing style, tone of voice, core values and preferred content formats from the blog."

// extractSchema 固定了抽取结果的形状，与 model.StyleProfile 一一对应。
var extractSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"writing_style":     map[string]interface{}{"type": "string"},
		"tone_of_voice":     map[string]interface{}{"type": "string"},
		"values":            map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"preferred_formats": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	},
	"required": []string{"writing_style", "tone_of_voice", "values", "preferred_formats"},
}

type extractRequest struct {
	URLs   []string               `json:"urls"`
	Prompt string                 `json:"prompt"`
	Schema map[string]interface{} `json:"schema"`
}

type extractResponse struct {
	Success bool               `json:"success"`
	Data    model.StyleProfile `json:"data"`
}

// ExtractStyle 调用抽取 API 获取指定 URL 的写作风格记录。
func (c *firecrawlClient) ExtractStyle(ctx context.Context, url string) (model.StyleProfile, error) {
	log.Infof("[ScraperClient] 开始抽取博客风格, url: %s", url)

	reqBody := extractRequest{
		URLs:   []string{url},
		Prompt: extractPrompt,
		Schema: extractSchema,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return model.StyleProfile{}, fmt.Errorf("failed to marshal extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/v1/extract", bytes.NewReader(reqBytes))
	if err != nil {
		return model.StyleProfile{}, fmt.Errorf("failed to create extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Errorf("[ScraperClient] 调用抽取 API 失败: %v", err)
		return model.StyleProfile{}, fmt.Errorf("failed to call extract api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Errorf("[ScraperClient] 抽取 API 返回非 200 状态码: %s", resp.Status)
		return model.StyleProfile{}, fmt.Errorf("extract api returned non-200 status: %s, body: %s", resp.Status, string(body))
	}

	var extractResp extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&extractResp); err != nil {
		return model.StyleProfile{}, fmt.Errorf("failed to decode extract response: %w", err)
	}
	if !extractResp.Success {
		return model.StyleProfile{}, fmt.Errorf("extract api reported failure")
	}

	log.Infof("[ScraperClient] 成功获取风格记录, writing_style: %q", extractResp.Data.WritingStyle)
	return extractResp.Data, nil
}
