package handler

import (
	"github.com/cognisentinel/cognisentinel-go/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GatewayHandler 聊天网关 HTTP 处理器
type GatewayHandler struct {
	quoteService   *service.QuoteService
	sessionService *service.SessionService
	relayService   *service.RelayService
	logger         *zap.Logger
}

// NewGatewayHandler 创建网关处理器
func NewGatewayHandler(quoteService *service.QuoteService, sessionService *service.SessionService, relayService *service.RelayService, logger *zap.Logger) *GatewayHandler {
	return &GatewayHandler{
		quoteService:   quoteService,
		sessionService: sessionService,
		relayService:   relayService,
		logger:         logger,
	}
}

// Quote 名言接口
func (h *GatewayHandler) Quote(c *gin.Context) {
	c.JSON(200, h.quoteService.Random())
}

// History 查询最近对话历史
func (h *GatewayHandler) History(c *gin.Context) {
	senderID := c.Query("sender")
	if senderID == "" {
		c.JSON(400, gin.H{"error": "sender 参数不能为空"})
		return
	}

	history := h.relayService.History(c.Request.Context(), senderID, 20)
	c.JSON(200, gin.H{
		"sender":  senderID,
		"history": history,
	})
}

// Health 健康检查
func (h *GatewayHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":         "UP",
		"service":        c.GetString("service_name"),
		"online_clients": h.sessionService.OnlineCount(),
	})
}
