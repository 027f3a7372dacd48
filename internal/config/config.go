package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Emotion  EmotionConfig  `yaml:"emotion"`
	Services ServicesConfig `yaml:"services"`
	Launcher LauncherConfig `yaml:"launcher"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// OpenAIConfig 远程文本生成 API 配置
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseUrl"`
}

// EmotionConfig 情绪分类配置
type EmotionConfig struct {
	// ModelURL 本地情绪模型服务地址，留空则只使用关键词规则
	ModelURL string `yaml:"modelUrl"`
}

// ServicesConfig 服务地址配置
type ServicesConfig struct {
	BotServer    string `yaml:"botServer"`    // 对话框架 REST 地址
	BotStatusURL string `yaml:"botStatusUrl"` // 对话框架健康检查地址
	QuoteService string `yaml:"quoteService"` // 本地名言服务地址
	ChatGateway  string `yaml:"chatGateway"`  // 聊天网关地址
}

// LauncherConfig 进程启动器配置
type LauncherConfig struct {
	ActionServerCmd []string `yaml:"actionServerCmd"`
	BotServerCmd    []string `yaml:"botServerCmd"`
	ChatGatewayCmd  []string `yaml:"chatGatewayCmd"`
	FrontendURL     string   `yaml:"frontendUrl"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadConfig 加载配置文件
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}
