package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/client"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"go.uber.org/zap"
)

// CheckServerStatus 对话框架存活探测动作
type CheckServerStatus struct {
	statusClient *client.StatusClient
	logger       *zap.Logger
}

// NewCheckServerStatus 创建存活探测动作
func NewCheckServerStatus(statusClient *client.StatusClient, logger *zap.Logger) *CheckServerStatus {
	return &CheckServerStatus{
		statusClient: statusClient,
		logger:       logger,
	}
}

func (a *CheckServerStatus) Name() string {
	return "action_check_server_status"
}

func (a *CheckServerStatus) Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event {
	status := a.statusClient.Check(ctx)

	a.logger.Info("对话框架状态检查", zap.String("status", status))

	return []model.Event{model.SlotSet(model.SlotServerConnectivity, status)}
}
