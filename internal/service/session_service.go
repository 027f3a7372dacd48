package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var (
	ErrClientOffline = fmt.Errorf("客户端不在线")
)

// SessionService 会话管理服务：维护浏览器端 WebSocket 连接
type SessionService struct {
	sessions        map[string]*model.ClientSession // senderId -> session
	sessionToSender map[string]string               // sessionId -> senderId
	mu              sync.RWMutex                    // 读写锁保护
	logger          *zap.Logger
}

// NewSessionService 创建会话管理服务
func NewSessionService(logger *zap.Logger) *SessionService {
	s := &SessionService{
		sessions:        make(map[string]*model.ClientSession),
		sessionToSender: make(map[string]string),
		logger:          logger,
	}

	// 启动心跳检测
	go s.heartbeatChecker()

	return s
}

// Register 注册客户端会话
func (s *SessionService) Register(senderID string, conn *websocket.Conn, sessionID string, clientIP string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 清理旧会话
	if existing, ok := s.sessions[senderID]; ok {
		s.logger.Info("客户端重新连接，关闭旧连接",
			zap.String("senderId", senderID),
			zap.String("oldSessionId", existing.SessionID))
		existing.Conn.Close()
		delete(s.sessionToSender, existing.SessionID)
	}

	now := time.Now()
	session := &model.ClientSession{
		SenderID:      senderID,
		Conn:          conn,
		SessionID:     sessionID,
		ClientIP:      clientIP,
		ConnectedAt:   now,
		LastHeartbeat: now,
		MissedBeats:   0,
	}

	s.sessions[senderID] = session
	s.sessionToSender[sessionID] = senderID

	s.logger.Info("客户端会话注册成功",
		zap.String("senderId", senderID),
		zap.String("sessionId", sessionID))
}

// Send 向指定客户端发送消息
func (s *SessionService) Send(senderID string, message interface{}) error {
	s.mu.RLock()
	session, ok := s.sessions[senderID]
	s.mu.RUnlock()

	if !ok {
		s.logger.Warn("客户端不在线，消息发送失败", zap.String("senderId", senderID))
		return ErrClientOffline
	}

	err := session.WriteMessage(message)
	if err != nil {
		s.logger.Error("消息发送失败",
			zap.String("senderId", senderID),
			zap.Error(err))
		// 异步清理无效连接
		go s.RemoveBySenderID(senderID)
		return err
	}

	return nil
}

// UpdateHeartbeat 更新心跳时间
func (s *SessionService) UpdateHeartbeat(senderID string) bool {
	s.mu.RLock()
	session, ok := s.sessions[senderID]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	session.UpdateHeartbeat()
	s.logger.Debug("心跳已更新", zap.String("senderId", senderID))
	return true
}

// RemoveBySessionID 根据 sessionId 移除会话
func (s *SessionService) RemoveBySessionID(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if senderID, ok := s.sessionToSender[sessionID]; ok {
		delete(s.sessions, senderID)
		delete(s.sessionToSender, sessionID)
		s.logger.Info("客户端会话已移除",
			zap.String("senderId", senderID),
			zap.String("sessionId", sessionID))
	}
}

// RemoveBySenderID 根据 senderId 移除会话
func (s *SessionService) RemoveBySenderID(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[senderID]; ok {
		delete(s.sessionToSender, session.SessionID)
		delete(s.sessions, senderID)
		s.logger.Info("客户端会话已移除", zap.String("senderId", senderID))
	}
}

// OnlineCount 获取在线客户端数
func (s *SessionService) OnlineCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// heartbeatChecker 心跳检测器
func (s *SessionService) heartbeatChecker() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()

		now := time.Now()
		for senderID, session := range s.sessions {
			if now.Sub(session.LastHeartbeat) > 60*time.Second {
				session.IncrementMissedBeats()

				if session.ShouldBeCleaned() {
					s.logger.Info("清理无效会话",
						zap.String("senderId", senderID),
						zap.Int("missedBeats", session.MissedBeats))

					session.Conn.Close()
					delete(s.sessions, senderID)
					delete(s.sessionToSender, session.SessionID)
				} else {
					s.logger.Warn("客户端心跳丢失",
						zap.String("senderId", senderID),
						zap.Int("missedBeats", session.MissedBeats))
				}
			}
		}

		s.mu.Unlock()
	}
}
