package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/cognisentinel/cognisentinel-go/internal/response"
	"go.uber.org/zap"
)

// FallbackAPI 对话框架兜底触发时的回复动作（无意图置信度门槛）
type FallbackAPI struct {
	detector *emotion.Detector
	selector *response.Selector
	logger   *zap.Logger
}

// NewFallbackAPI 创建兜底回复动作
func NewFallbackAPI(detector *emotion.Detector, selector *response.Selector, logger *zap.Logger) *FallbackAPI {
	return &FallbackAPI{
		detector: detector,
		selector: selector,
		logger:   logger,
	}
}

func (a *FallbackAPI) Name() string {
	return "action_fallback_api"
}

func (a *FallbackAPI) Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event {
	text := tracker.LatestMessage.Text

	result := a.detector.Detect(text)

	a.logger.Info("兜底回复",
		zap.String("text", text),
		zap.String("emotion", result.Emotion),
		zap.String("method", result.Method))

	reply := a.selector.FallbackReply(ctx, text, result.Emotion, false)
	dispatcher.Utter(reply)

	return []model.Event{model.SlotSet(model.SlotDetectedEmotion, result.Emotion)}
}
