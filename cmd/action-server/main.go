package main

import (
	"fmt"
	"log"
	"time"

	"github.com/cognisentinel/cognisentinel-go/internal/action"
	"github.com/cognisentinel/cognisentinel-go/internal/client"
	"github.com/cognisentinel/cognisentinel-go/internal/config"
	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/handler"
	"github.com/cognisentinel/cognisentinel-go/internal/middleware"
	"github.com/cognisentinel/cognisentinel-go/internal/response"
	"github.com/cognisentinel/cognisentinel-go/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/action-server.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("action-server 服务启动中...")

	// 情绪检测器：配置了模型服务时优先走模型，否则只用关键词规则
	var tagger emotion.Tagger
	if cfg.Emotion.ModelURL != "" {
		tagger = emotion.NewHTTPTagger(cfg.Emotion.ModelURL)
		zapLogger.Info("情绪模型服务已启用", zap.String("url", cfg.Emotion.ModelURL))
	} else {
		zapLogger.Warn("未配置情绪模型服务，使用关键词规则")
	}
	detector := emotion.NewDetector(tagger, zapLogger)

	// 外部客户端
	openaiClient := client.NewOpenAIClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model, zapLogger)
	quoteClient := client.NewQuoteClient(cfg.Services.QuoteService)
	statusClient := client.NewStatusClient(cfg.Services.BotStatusURL, zapLogger)

	// 回复选择器
	selector := response.NewSelector(openaiClient, quoteClient, response.NewRand(time.Now().UnixNano()), zapLogger)

	// 注册动作
	registry := action.NewRegistry(zapLogger)
	actions := []action.Action{
		action.NewProcessMessage(detector, selector, zapLogger),
		action.NewFallbackAPI(detector, selector, zapLogger),
		action.NewMotivationalQuote(detector, selector, zapLogger),
		action.NewCheckServerStatus(statusClient, zapLogger),
		action.NewSuggestCopingStrategy(selector, zapLogger),
	}
	for _, a := range actions {
		if err := registry.Register(a); err != nil {
			log.Fatalf("注册动作失败: %v", err)
		}
	}

	// 初始化处理器
	actionHandler := handler.NewActionHandler(registry, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	r.POST("/webhook", actionHandler.Webhook)
	r.GET("/api/actions", actionHandler.ListActions)
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"service": cfg.Server.Name,
			"actions": registry.Count(),
		})
	})

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("action-server 服务启动成功",
		zap.Int("port", cfg.Server.Port),
		zap.Int("actions", registry.Count()))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
