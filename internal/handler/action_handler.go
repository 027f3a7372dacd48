package handler

import (
	"github.com/cognisentinel/cognisentinel-go/internal/action"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActionHandler 动作服务器处理器
type ActionHandler struct {
	registry *action.Registry
	logger   *zap.Logger
}

// NewActionHandler 创建动作服务器处理器
func NewActionHandler(registry *action.Registry, logger *zap.Logger) *ActionHandler {
	return &ActionHandler{
		registry: registry,
		logger:   logger,
	}
}

// Webhook 动作调度接口：对话框架每轮调用一次
func (h *ActionHandler) Webhook(c *gin.Context) {
	var req model.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	h.logger.Info("收到动作请求",
		zap.String("action", req.NextAction),
		zap.String("senderId", req.SenderID))

	act, err := h.registry.Get(req.NextAction)
	if err != nil {
		h.logger.Warn("未注册的动作", zap.String("action", req.NextAction))
		c.JSON(404, gin.H{"error": "action not found: " + req.NextAction})
		return
	}

	dispatcher := action.NewDispatcher()
	events := act.Run(c.Request.Context(), dispatcher, &req.Tracker)
	if events == nil {
		events = []model.Event{}
	}

	c.JSON(200, model.ActionResponse{
		Events:    events,
		Responses: dispatcher.Messages(),
	})
}

// ListActions 查询已注册的动作
func (h *ActionHandler) ListActions(c *gin.Context) {
	names := h.registry.List()
	c.JSON(200, gin.H{
		"actions": names,
		"count":   len(names),
	})
}
