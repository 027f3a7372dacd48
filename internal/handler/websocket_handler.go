package handler

import (
	"net/http"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/cognisentinel/cognisentinel-go/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: 生产环境应该检查 Origin 白名单
		return true
	},
}

// WebSocketHandler 聊天网关 WebSocket 处理器
type WebSocketHandler struct {
	sessionService *service.SessionService
	relayService   *service.RelayService
	logger         *zap.Logger
}

// NewWebSocketHandler 创建 WebSocket 处理器
func NewWebSocketHandler(sessionService *service.SessionService, relayService *service.RelayService, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		sessionService: sessionService,
		relayService:   relayService,
		logger:         logger,
	}
}

// HandleWebSocket WebSocket 连接入口
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	// 匿名客户端：未携带 sender 参数时分配一个
	senderID := c.Query("sender")
	if senderID == "" {
		senderID = uuid.New().String()
	}

	// 升级为 WebSocket 连接
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}
	defer conn.Close()

	// 注册会话
	sessionID := uuid.New().String()
	h.sessionService.Register(senderID, conn, sessionID, c.ClientIP())
	defer h.sessionService.RemoveBySessionID(sessionID)

	h.logger.Info("WebSocket 连接建立",
		zap.String("senderId", senderID),
		zap.String("sessionId", sessionID))

	// 消息循环
	for {
		var msg model.ChatMessage
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket 读取错误", zap.Error(err))
			}
			break
		}

		h.handleMessage(senderID, &msg)
	}

	h.logger.Info("WebSocket 连接断开", zap.String("senderId", senderID))
}

// handleMessage 处理客户端消息
func (h *WebSocketHandler) handleMessage(senderID string, msg *model.ChatMessage) {
	switch msg.Type {
	case "CHAT":
		// 异步转发到对话框架
		go h.relayService.HandleUserMessage(senderID, msg.Content)

		// 立即返回确认消息
		ack := model.ChatAck{
			Success:   true,
			MessageID: msg.MessageID,
			Message:   "Message received, thinking...",
		}
		h.sessionService.Send(senderID, ack)

	case "HEARTBEAT":
		h.sessionService.UpdateHeartbeat(senderID)
		h.logger.Debug("收到心跳", zap.String("senderId", senderID))

	default:
		h.logger.Warn("未知消息类型",
			zap.String("senderId", senderID),
			zap.String("type", msg.Type))
	}
}
