package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 对话框架不可用时的兜底回复
const relayTroubleMessage = "I'm having trouble processing your request right now. Let's try something else."

// 每个用户保留的最近历史条数
const historyLimit = 50

// RelayService 消息转发服务：把用户消息转发给对话框架 REST 通道，
// 将回复推送回客户端，并在 Redis 中记录最近对话历史
type RelayService struct {
	botServerURL   string
	sessionService *SessionService
	redisClient    *redis.Client
	httpClient     *http.Client
	logger         *zap.Logger
}

// NewRelayService 创建消息转发服务
func NewRelayService(botServerURL string, sessionService *SessionService, redisClient *redis.Client, logger *zap.Logger) *RelayService {
	return &RelayService{
		botServerURL:   botServerURL,
		sessionService: sessionService,
		redisClient:    redisClient,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		logger:         logger,
	}
}

// HandleUserMessage 处理一条用户消息
func (s *RelayService) HandleUserMessage(senderID string, content string) {
	s.logger.Info("处理用户消息",
		zap.String("senderId", senderID),
		zap.String("content", content))

	ctx := context.Background()
	s.saveHistory(ctx, senderID, "user: "+content)

	replies, err := s.forwardToBot(senderID, content)
	if err != nil {
		s.logger.Error("转发到对话框架失败",
			zap.String("senderId", senderID),
			zap.Error(err))
		replies = []model.BotReply{{RecipientID: senderID, Text: relayTroubleMessage}}
	}

	for _, reply := range replies {
		if reply.Text == "" {
			continue
		}

		msg := model.ChatMessage{
			MessageID:  uuid.New().String(),
			Type:       "BOT_RESPONSE",
			Content:    reply.Text,
			Sender:     "bot",
			SenderName: "CogniSentinel",
			Timestamp:  time.Now(),
		}

		if err := s.sessionService.Send(senderID, msg); err != nil {
			s.logger.Error("推送回复失败",
				zap.String("senderId", senderID),
				zap.Error(err))
			continue
		}

		s.saveHistory(ctx, senderID, "bot: "+reply.Text)
	}
}

// History 读取最近的对话历史
func (s *RelayService) History(ctx context.Context, senderID string, count int64) []string {
	historyKey := fmt.Sprintf("chat_history:%s", senderID)
	history, err := s.redisClient.LRange(ctx, historyKey, -count, -1).Result()
	if err != nil {
		s.logger.Warn("读取对话历史失败",
			zap.String("senderId", senderID),
			zap.Error(err))
		return nil
	}
	return history
}

// forwardToBot 调用对话框架 REST 通道
func (s *RelayService) forwardToBot(senderID string, content string) ([]model.BotReply, error) {
	reqBody := map[string]string{
		"sender":  senderID,
		"message": content,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}

	url := s.botServerURL + "/webhooks/rest/webhook"
	resp, err := s.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("HTTP 请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("对话框架返回错误: %d, body: %s", resp.StatusCode, string(body))
	}

	var replies []model.BotReply
	if err := json.Unmarshal(body, &replies); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	return replies, nil
}

// saveHistory 保存对话历史
func (s *RelayService) saveHistory(ctx context.Context, senderID string, entry string) {
	if s.redisClient == nil {
		return
	}

	historyKey := fmt.Sprintf("chat_history:%s", senderID)
	pipe := s.redisClient.Pipeline()
	pipe.RPush(ctx, historyKey, entry)
	pipe.LTrim(ctx, historyKey, -historyLimit, -1)
	pipe.Expire(ctx, historyKey, 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("保存对话历史失败",
			zap.String("senderId", senderID),
			zap.Error(err))
	}
}
