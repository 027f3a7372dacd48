package emotion

// 情绪标签（封闭集合）
const (
	Joy     = "joy"
	Sadness = "sadness"
	Anger   = "anger"
	Fear    = "fear"
	Neutral = "neutral"
)

// Categories 情绪类别的固定遍历顺序（关键词计分平局时先到先得）
var Categories = []string{Joy, Sadness, Anger, Fear, Neutral}

// synonyms 同义情绪到标准标签的映射
var synonyms = map[string]string{
	"sad":     Sadness,
	"angry":   Anger,
	"anxious": Fear,
	"afraid":  Fear,
	"happy":   Joy,
	"excited": Joy,
}

// canonical 标准标签集合
var canonical = map[string]bool{
	Joy:     true,
	Sadness: true,
	Anger:   true,
	Fear:    true,
	Neutral: true,
}

// Normalize 归一化情绪标签：同义词映射到标准标签，未知标签回退为 neutral
func Normalize(label string) string {
	if canonical[label] {
		return label
	}
	if mapped, ok := synonyms[label]; ok {
		return mapped
	}
	return Neutral
}
