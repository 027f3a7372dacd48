package main

import (
	"fmt"
	"log"

	"github.com/cognisentinel/cognisentinel-go/internal/config"
	"github.com/cognisentinel/cognisentinel-go/internal/handler"
	"github.com/cognisentinel/cognisentinel-go/internal/middleware"
	"github.com/cognisentinel/cognisentinel-go/internal/service"
	"github.com/cognisentinel/cognisentinel-go/pkg/logger"
	"github.com/cognisentinel/cognisentinel-go/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig("configs/chat-gateway.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	zapLogger, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("chat-gateway 服务启动中...")

	// 初始化 Redis（对话历史）
	redisClient, err := redis.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("连接 Redis 失败", zap.Error(err))
	}

	// 初始化服务
	sessionService := service.NewSessionService(zapLogger)
	relayService := service.NewRelayService(cfg.Services.BotServer, sessionService, redisClient, zapLogger)
	quoteService := service.NewQuoteService()

	// 初始化处理器
	wsHandler := handler.NewWebSocketHandler(sessionService, relayService, zapLogger)
	gatewayHandler := handler.NewGatewayHandler(quoteService, sessionService, relayService, zapLogger)

	// 初始化路由
	r := gin.Default()
	r.Use(middleware.CORS())

	// WebSocket 端点（浏览器聊天）
	r.GET("/ws", wsHandler.HandleWebSocket)

	// HTTP API
	r.GET("/quote", gatewayHandler.Quote)
	r.GET("/api/history", gatewayHandler.History)
	r.GET("/api/health", func(c *gin.Context) {
		c.Set("service_name", cfg.Server.Name)
		gatewayHandler.Health(c)
	})

	// 静态聊天页面
	r.Static("/static", "./web")
	r.StaticFile("/", "./web/index.html")

	// 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zapLogger.Info("chat-gateway 服务启动成功",
		zap.Int("port", cfg.Server.Port))

	if err := r.Run(addr); err != nil {
		zapLogger.Fatal("服务启动失败", zap.Error(err))
	}
}
