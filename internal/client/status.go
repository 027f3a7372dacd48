package client

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// 连接状态
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// StatusClient 对话框架健康检查客户端
type StatusClient struct {
	statusURL  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewStatusClient 创建健康检查客户端
func NewStatusClient(statusURL string, logger *zap.Logger) *StatusClient {
	return &StatusClient{
		statusURL:  statusURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		logger:     logger,
	}
}

// Check 单次存活探测，不重试，失败视为断开
func (c *StatusClient) Check(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, "GET", c.statusURL, nil)
	if err != nil {
		c.logger.Error("创建健康检查请求失败", zap.Error(err))
		return StatusDisconnected
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("对话框架连接失败", zap.Error(err))
		return StatusDisconnected
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		c.logger.Warn("对话框架返回异常状态码", zap.Int("status", resp.StatusCode))
		return StatusDisconnected
	}

	c.logger.Info("对话框架连接正常")
	return StatusConnected
}
