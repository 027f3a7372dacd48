package action

import (
	"context"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"github.com/cognisentinel/cognisentinel-go/internal/response"
	"go.uber.org/zap"
)

// SuggestCopingStrategy 按已记录的情绪槽位推荐应对技巧
type SuggestCopingStrategy struct {
	selector *response.Selector
	logger   *zap.Logger
}

// NewSuggestCopingStrategy 创建应对技巧推荐动作
func NewSuggestCopingStrategy(selector *response.Selector, logger *zap.Logger) *SuggestCopingStrategy {
	return &SuggestCopingStrategy{
		selector: selector,
		logger:   logger,
	}
}

func (a *SuggestCopingStrategy) Name() string {
	return "action_suggest_coping_strategy"
}

func (a *SuggestCopingStrategy) Run(ctx context.Context, dispatcher *Dispatcher, tracker *model.Tracker) []model.Event {
	current := tracker.Slot(model.SlotDetectedEmotion)
	if current == "" {
		current = emotion.Neutral
	}

	a.logger.Info("推荐应对技巧", zap.String("emotion", current))

	dispatcher.Utter(a.selector.Technique(current))

	return []model.Event{}
}
