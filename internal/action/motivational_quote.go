package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/cognisentinel/cognisentinel-go/internal/response"
	"go.uber.org/zap"
)

// MotivationalQuote 励志名言动作：按检测到的情绪加引导语
type MotivationalQuote struct {
	detector *emotion.Detector
	selector *response.Selector
	logger   *zap.Logger
}

// NewMotivationalQuote 创建励志名言动作
func NewMotivationalQuote(detector *emotion.Detector, selector *response.Selector, logger *zap.Logger) *MotivationalQuote {
	return &MotivationalQuote{
		detector: detector,
		selector: selector,
		logger:   logger,
	}
}

func (a *MotivationalQuote) Name() string {
	return "action_get_motivational_quote"
}

func (a *MotivationalQuote) Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event {
	text := tracker.LatestMessage.Text

	result := a.detector.Detect(text)

	a.logger.Info("励志名言请求",
		zap.String("emotion", result.Emotion),
		zap.Float64("confidence", result.Confidence),
		zap.String("method", result.Method))

	dispatcher.Utter(a.selector.MotivationalQuote(ctx, result.Emotion))

	return []model.Event{model.SlotSet(model.SlotDetectedEmotion, result.Emotion)}
}
