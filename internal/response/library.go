package response

import (
	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
	"github.com/cognisentinel/cognisentinel-go/internal/model"
)

// empatheticResponses 各情绪的共情回复
var empatheticResponses = map[string][]string{
	emotion.Sadness: {
		"I hear that you're feeling down right now. That's completely valid, and I'm here to listen.",
		"It sounds like you're going through a difficult time. Remember that it's okay to feel sad sometimes.",
		"I'm sorry you're feeling this way. Would it help to talk more about what's troubling you?",
		"When we feel sad, it can be overwhelming. Let's take it one step at a time together.",
		"I understand that sadness can feel heavy. You don't have to carry that weight alone.",
	},
	emotion.Anger: {
		"I can sense your frustration. It's completely natural to feel angry sometimes.",
		"Your feelings are valid. Would it help to explore what's behind this anger?",
		"It sounds like this situation has really upset you, and that's understandable.",
		"Anger often comes from feeling unheard or disrespected. I'm here to listen to you.",
		"I appreciate you sharing these strong feelings with me. Let's work through this together.",
	},
	emotion.Fear: {
		"It's okay to feel anxious or scared. These feelings are trying to protect you.",
		"I hear that you're worried. Would it help to talk about what's causing this fear?",
		"Feeling anxious can be really uncomfortable. You're brave for acknowledging these feelings.",
		"When we're afraid, our minds often focus on the worst possibilities. Let's explore this together.",
		"Your concerns are valid. Let's take a moment to breathe and think about this situation.",
	},
	emotion.Joy: {
		"It's wonderful to hear you're feeling positive! Your happiness is important.",
		"I'm so glad things are going well for you. Would you like to share more about what's bringing you joy?",
		"That sounds really positive! It's great that you're experiencing these good feelings.",
		"I'm happy to hear that! Celebrating these positive moments is important.",
		"Your positive energy is contagious. Thank you for sharing this happy moment.",
	},
	emotion.Neutral: {
		"I'm here to support you, whatever you might be feeling right now.",
		"How are you feeling about everything that's going on?",
		"I'm listening and here to help in any way I can.",
		"Would you like to explore any particular thoughts or feelings today?",
		"Sometimes taking a moment to check in with ourselves can be helpful. How are you really doing?",
	},
}

// therapyTechniques 各情绪的应对技巧
var therapyTechniques = map[string][]string{
	emotion.Sadness: {
		"Practice self-compassion by treating yourself with the same kindness you'd offer to a friend.",
		"Try journaling about your feelings to help process them.",
		"Engage in light physical activity like walking, which can help improve your mood.",
		"Connect with a supportive friend or family member.",
		"Remember that emotions are temporary and will pass with time.",
	},
	emotion.Anger: {
		"Take deep breaths, counting to 10 before responding.",
		"Try the 5-4-3-2-1 grounding technique to calm your nervous system.",
		"Consider the situation from the other person's perspective.",
		"Express your feelings using 'I' statements rather than accusations.",
		"Step away from the situation temporarily if possible to cool down.",
	},
	emotion.Fear: {
		"Practice mindful breathing to center yourself in the present moment.",
		"Challenge catastrophic thinking by examining the evidence for your fears.",
		"Break overwhelming tasks into smaller, manageable steps.",
		"Visualize yourself successfully handling the situation you fear.",
		"Remember past situations where you successfully overcame your fears.",
	},
	emotion.Joy: {
		"Savor this positive moment by being fully present in it.",
		"Express gratitude for the good things in your life.",
		"Share your happiness with others to strengthen connections.",
		"Reflect on what contributed to this positive feeling.",
		"Use this positive energy to tackle something challenging.",
	},
	emotion.Neutral: {
		"Practice mindfulness to become more aware of your thoughts and feelings.",
		"Set small, achievable goals to create a sense of accomplishment.",
		"Explore activities that have brought you joy in the past.",
		"Consider starting a gratitude practice to notice positive aspects of your life.",
		"Take care of your physical needs like sleep, nutrition, and exercise.",
	},
}

// FallbackQuotes 名言服务不可用时的本地备选名言
var FallbackQuotes = []model.Quote{
	{Quote: "The only way out is through.", Author: "Robert Frost"},
	{Quote: "You are stronger than you think.", Author: "Unknown"},
	{Quote: "Every moment is a fresh beginning.", Author: "T.S. Eliot"},
	{Quote: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Quote: "This too shall pass.", Author: "Persian Proverb"},
}

// copingIntros 应对技巧的引导语
var copingIntros = map[string]string{
	emotion.Sadness: "When you're feeling down, it can help to:",
	emotion.Anger:   "To manage feelings of frustration or anger, you might try:",
	emotion.Fear:    "When anxiety or fear arises, this technique can be helpful:",
	emotion.Joy:     "To build on these positive feelings, consider:",
	emotion.Neutral: "Here's a helpful technique you might want to try:",
}

// Empathetic 返回该情绪的共情回复列表（未知标签回退到 neutral）
func Empathetic(label string) []string {
	return empatheticResponses[emotion.Normalize(label)]
}

// Techniques 返回该情绪的应对技巧列表（未知标签回退到 neutral）
func Techniques(label string) []string {
	return therapyTechniques[emotion.Normalize(label)]
}

// CopingIntro 返回该情绪的应对技巧引导语
func CopingIntro(label string) string {
	return copingIntros[emotion.Normalize(label)]
}
