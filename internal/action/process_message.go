package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/cognisentinel/cognisentinel-go/internal/response"
	"go.uber.org/zap"
)

// 意图置信度阈值：低于该值时走兜底回复策略
const intentConfidenceThreshold = 0.3

// ProcessMessage 处理用户消息：高置信度意图只记录情绪槽位，
// 低置信度意图走兜底回复策略（含应对技巧分支）
type ProcessMessage struct {
	detector *emotion.Detector
	selector *response.Selector
	logger   *zap.Logger
}

// NewProcessMessage 创建消息处理动作
func NewProcessMessage(detector *emotion.Detector, selector *response.Selector, logger *zap.Logger) *ProcessMessage {
	return &ProcessMessage{
		detector: detector,
		selector: selector,
		logger:   logger,
	}
}

func (a *ProcessMessage) Name() string {
	return "action_process_message"
}

func (a *ProcessMessage) Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event {
	text := tracker.LatestMessage.Text
	intent := tracker.LatestMessage.Intent

	result := a.detector.Detect(text)

	a.logger.Info("处理用户消息",
		zap.String("text", text),
		zap.String("intent", intent.Name),
		zap.Float64("intentConfidence", intent.Confidence),
		zap.String("emotion", result.Emotion),
		zap.Float64("emotionConfidence", result.Confidence),
		zap.String("method", result.Method))

	// 高置信度意图交给对话框架自己的策略，只写情绪槽位
	if intent.Confidence >= intentConfidenceThreshold {
		return []model.Event{model.SlotSet(model.SlotDetectedEmotion, result.Emotion)}
	}

	reply := a.selector.FallbackReply(ctx, text, result.Emotion, true)
	dispatcher.Utter(reply)

	return []model.Event{model.SlotSet(model.SlotDetectedEmotion, result.Emotion)}
}
