package emotion

import (
	"strings"

	"go.uber.org/zap"
)

// 检测方式标记
const (
	MethodDefault  = "default"
	MethodModel    = "model"
	MethodKeywords = "keywords"
)

// Prediction 单个情绪预测（标签 + 置信度）
type Prediction struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Result 情绪检测结果
type Result struct {
	Emotion    string       `json:"emotion"`
	Confidence float64      `json:"confidence"`
	Method     string       `json:"method"`
	All        []Prediction `json:"all_emotions,omitempty"`
}

// keywords 各情绪类别的关键词表（关键词回退路径使用）
var keywords = map[string][]string{
	Joy:     {"happy", "glad", "joy", "excited", "pleased", "delighted", "content", "cheerful", "thrilled", "wonderful"},
	Sadness: {"sad", "unhappy", "depressed", "down", "miserable", "heartbroken", "gloomy", "disappointed", "upset", "grief"},
	Anger:   {"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "outraged", "enraged", "hostile", "bitter"},
	Fear:    {"afraid", "scared", "frightened", "terrified", "anxious", "worried", "nervous", "panicked", "stressed", "uneasy"},
	Neutral: {"okay", "fine", "neutral", "normal", "average", "so-so"},
}

// Detector 情绪检测器：优先使用模型，失败时回退到关键词规则。
// 检测永远不会返回错误，最差情况返回 neutral。
type Detector struct {
	tagger Tagger
	logger *zap.Logger
}

// NewDetector 创建情绪检测器。tagger 为 nil 时只使用关键词规则。
func NewDetector(tagger Tagger, logger *zap.Logger) *Detector {
	return &Detector{
		tagger: tagger,
		logger: logger,
	}
}

// Detect 检测文本中的情绪
func (d *Detector) Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Emotion: Neutral, Confidence: 0.0, Method: MethodDefault}
	}

	// 模型路径：任何失败都回退到关键词规则
	if d.tagger != nil {
		predictions, err := d.tagger.Predict(text)
		if err == nil && len(predictions) > 0 {
			top := predictions[0]
			return Result{
				Emotion:    strings.ToLower(top.Emotion),
				Confidence: top.Confidence,
				Method:     MethodModel,
				All:        predictions,
			}
		}
		if err != nil {
			d.logger.Warn("情绪模型推理失败，回退到关键词规则", zap.Error(err))
		}
	}

	label, confidence := detectWithKeywords(text)
	return Result{Emotion: label, Confidence: confidence, Method: MethodKeywords}
}

// detectWithKeywords 关键词计分：每类统计命中数，严格最高者胜出，
// 平局按 Categories 顺序先到先得，全零时返回 neutral。
func detectWithKeywords(text string) (string, float64) {
	lowered := strings.ToLower(text)

	scores := make(map[string]int, len(Categories))
	total := 0
	for _, category := range Categories {
		for _, keyword := range keywords[category] {
			if strings.Contains(lowered, keyword) {
				scores[category]++
				total++
			}
		}
	}

	maxScore := 0
	detected := Neutral
	for _, category := range Categories {
		if scores[category] > maxScore {
			maxScore = scores[category]
			detected = category
		}
	}

	confidence := 0.5
	if total > 0 {
		confidence = 0.5 + float64(maxScore)/float64(total)*0.4
		if confidence > 0.9 {
			confidence = 0.9
		}
	}

	return detected, confidence
}
