// Package config 负责加载和管理应用程序的配置。
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// 全局配置变量，存储从配置文件加载的所有设置。
var Conf Config

// Config 是整个应用程序的配置结构体，与 config.yaml 文件结构对应。
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Scraper  ScraperConfig  `mapstructure:"scraper"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
}

// ServerConfig 存储服务器相关的配置。
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 存储所有数据库连接的配置。
type DatabaseConfig struct {
	Mongo MongoConfig `mapstructure:"mongo"`
	Redis RedisConfig `mapstructure:"redis"`
}

// MongoConfig 存储 MongoDB 文档库的配置。
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// RedisConfig 存储 Redis 的配置。Addr 为空时表示禁用读缓存。
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 存储日志相关的配置。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ScraperConfig 存储博客内容抽取服务（Firecrawl 风格 API）的配置。
type ScraperConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// WebhookConfig 存储两个自动化 webhook（画像合成 / 帖子生成）的配置。
// PostTimeoutSeconds 仅作用于帖子生成调用；画像合成调用不设超时。
type WebhookConfig struct {
	PersonaURL         string `mapstructure:"persona_url"`
	PostURL            string `mapstructure:"post_url"`
	APIKey             string `mapstructure:"api_key"`
	PostTimeoutSeconds int    `mapstructure:"post_timeout_seconds"`
}

// MissingRequired 返回缺失的必需配置项名称列表，供 /health 使用。
// 缺失项不会阻止进程启动，只会让依赖它的请求以 500 失败。
func (c Config) MissingRequired() []string {
	var missing []string
	if c.Scraper.APIKey == "" {
		missing = append(missing, "scraper.api_key")
	}
	if c.Webhook.PersonaURL == "" {
		missing = append(missing, "webhook.persona_url")
	}
	if c.Webhook.PostURL == "" {
		missing = append(missing, "webhook.post_url")
	}
	return missing
}

// Init 初始化配置加载，从指定的路径读取 YAML 文件并解析到 Conf 变量中。
func Init(configPath string) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("读取配置文件失败: %w", err))
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		panic(fmt.Errorf("无法将配置解析到结构体中: %w", err))
	}
}
