package model

import "time"

// ChatMessage 网关聊天消息
type ChatMessage struct {
	MessageID  string    `json:"messageId"`
	Type       string    `json:"type"` // CHAT, HEARTBEAT, BOT_RESPONSE
	Content    string    `json:"content"`
	Sender     string    `json:"sender"`
	SenderName string    `json:"senderName,omitempty"`
	SessionID  string    `json:"sessionId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatAck 聊天确认响应
type ChatAck struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}

// Quote 名言
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// BotReply 对话框架 REST 通道返回的单条回复
type BotReply struct {
	RecipientID string `json:"recipient_id"`
	Text        string `json:"text"`
}
