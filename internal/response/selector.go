package response

import (
	"context"
	"fmt"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"go.uber.org/zap"
)

// ChatClient 远程文本生成能力
type ChatClient interface {
	SimpleChat(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// QuoteFetcher 名言服务能力
type QuoteFetcher interface {
	Fetch(ctx context.Context) (model.Quote, error)
}

// 回复选择概率
const (
	predefinedChance = 0.7 // 使用预定义共情回复的概率
	techniqueChance  = 0.5 // 附加应对技巧的概率
)

// Selector 回复选择器：按策略在预定义回复、应对技巧与远程生成之间选择。
// 任何远程调用失败都降级为预定义回复，永远不返回错误。
type Selector struct {
	chatClient  ChatClient
	quoteClient QuoteFetcher
	random      Rand
	logger      *zap.Logger
}

// NewSelector 创建回复选择器
func NewSelector(chatClient ChatClient, quoteClient QuoteFetcher, random Rand, logger *zap.Logger) *Selector {
	return &Selector{
		chatClient:  chatClient,
		quoteClient: quoteClient,
		random:      random,
		logger:      logger,
	}
}

// FallbackReply 低置信度/兜底回复策略：
// 70% 概率使用预定义共情回复（withTechnique 时对负面情绪再以 50% 概率附加技巧），
// 否则调用远程文本生成 API，失败时降级为预定义回复。
func (s *Selector) FallbackReply(ctx context.Context, userMessage, label string, withTechnique bool) string {
	mapped := emotion.Normalize(label)

	if s.random.Float64() < predefinedChance {
		reply := s.pickEmpathetic(mapped)
		if withTechnique && negativeEmotion(mapped) && s.random.Float64() < techniqueChance {
			techniques := Techniques(mapped)
			technique := techniques[s.random.Intn(len(techniques))]
			reply += fmt.Sprintf("\n\nHere's a technique that might help: %s", technique)
		}
		return reply
	}

	systemPrompt := fmt.Sprintf(
		"You are an empathetic mental health assistant. The user seems to be feeling %s. "+
			"Provide a supportive response that acknowledges the user's feelings "+
			"and offers gentle guidance. Keep your response concise (2-3 sentences) "+
			"and focus on emotional support rather than clinical advice.", mapped)

	reply, err := s.chatClient.SimpleChat(ctx, systemPrompt, userMessage)
	if err != nil {
		s.logger.Warn("远程文本生成失败，使用预定义回复",
			zap.String("emotion", mapped),
			zap.Error(err))
		return s.pickEmpathetic(mapped)
	}

	return reply
}

// MotivationalQuote 获取励志名言：优先调用本地名言服务，
// 失败时从本地备选列表随机选取，并按情绪加上引导语。
func (s *Selector) MotivationalQuote(ctx context.Context, label string) string {
	quote, err := s.quoteClient.Fetch(ctx)
	if err != nil {
		quote = FallbackQuotes[s.random.Intn(len(FallbackQuotes))]
		s.logger.Warn("名言服务不可用，使用本地备选名言", zap.Error(err))
	}

	mapped := emotion.Normalize(label)
	var prefix string
	if mapped == emotion.Sadness {
		prefix = "I understand you might be feeling down. Here's something that might help: "
	} else if mapped == emotion.Anger {
		prefix = "I can sense you're frustrated. Take a deep breath and consider this: "
	} else if mapped == emotion.Fear {
		prefix = "It's okay to feel anxious sometimes. Remember: "
	} else if mapped == emotion.Joy {
		prefix = "I'm glad you're feeling positive! Here's more inspiration: "
	} else {
		prefix = "Here's a thought for you: "
	}

	return fmt.Sprintf("%s\n\"%s\"\n- %s", prefix, quote.Quote, quote.Author)
}

// Technique 随机选取一条应对技巧并带上情绪引导语
func (s *Selector) Technique(label string) string {
	mapped := emotion.Normalize(label)
	techniques := Techniques(mapped)
	technique := techniques[s.random.Intn(len(techniques))]
	return fmt.Sprintf("%s\n\n%s", CopingIntro(mapped), technique)
}

// pickEmpathetic 随机选取一条共情回复
func (s *Selector) pickEmpathetic(mapped string) string {
	responses := Empathetic(mapped)
	return responses[s.random.Intn(len(responses))]
}

// negativeEmotion 是否为需要应对技巧的负面情绪
func negativeEmotion(label string) bool {
	return label == emotion.Sadness || label == emotion.Anger || label == emotion.Fear
}
