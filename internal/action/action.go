package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
)

// Action 自定义动作：对话框架每轮调用一次
type Action interface {
	// Name 动作名称（对话框架按名称调度）
	Name() string
	// Run 执行动作，返回状态更新事件；用户消息通过 dispatcher 发送
	Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event
}

// Dispatcher 收集本轮要发送给用户的消息
type Dispatcher struct {
	messages []model.BotMessage
}

// NewDispatcher 创建消息收集器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Utter 发送一条用户可见消息
func (d *Dispatcher) Utter(text string) {
	d.messages = append(d.messages, model.BotMessage{Text: text})
}

// Messages 返回收集到的消息
func (d *Dispatcher) Messages() []model.BotMessage {
	if d.messages == nil {
		return []model.BotMessage{}
	}
	return d.messages
}
