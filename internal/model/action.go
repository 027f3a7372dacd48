package model

// Intent 对话框架识别出的意图
type Intent struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// LatestMessage 最近一条用户消息
type LatestMessage struct {
	Text   string `json:"text"`
	Intent Intent `json:"intent"`
}

// Tracker 对话框架传入的会话状态
type Tracker struct {
	SenderID      string                 `json:"sender_id"`
	Slots         map[string]interface{} `json:"slots"`
	LatestMessage LatestMessage          `json:"latest_message"`
}

// Slot 读取槽位值（不存在时返回空字符串）
func (t *Tracker) Slot(name string) string {
	if t.Slots == nil {
		return ""
	}
	if v, ok := t.Slots[name].(string); ok {
		return v
	}
	return ""
}

// ActionRequest 动作服务器请求（每轮对话一次）
type ActionRequest struct {
	NextAction string                 `json:"next_action"`
	SenderID   string                 `json:"sender_id"`
	Tracker    Tracker                `json:"tracker"`
	Domain     map[string]interface{} `json:"domain,omitempty"`
	Version    string                 `json:"version,omitempty"`
}

// Event 返回给对话框架的状态更新指令
type Event struct {
	Event string      `json:"event"`
	Name  string      `json:"name,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// SlotSet 构建槽位赋值事件
func SlotSet(name string, value interface{}) Event {
	return Event{Event: "slot", Name: name, Value: value}
}

// BotMessage 发送给用户的消息
type BotMessage struct {
	Text string `json:"text"`
}

// ActionResponse 动作服务器响应
type ActionResponse struct {
	Events    []Event      `json:"events"`
	Responses []BotMessage `json:"responses"`
}

// 槽位名称
const (
	SlotDetectedEmotion    = "detected_emotion"
	SlotServerConnectivity = "server_connection_status"
)
