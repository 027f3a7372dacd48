package service

import (
	"math/rand"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
)

// QuoteService 名言服务：从内置列表随机返回一条励志名言
type QuoteService struct {
	quotes []model.Quote
}

// NewQuoteService 创建名言服务
func NewQuoteService() *QuoteService {
	return &QuoteService{
		quotes: []model.Quote{
			{Quote: "The only way out is through.", Author: "Robert Frost"},
			{Quote: "You are stronger than you think.", Author: "Unknown"},
			{Quote: "Every moment is a fresh beginning.", Author: "T.S. Eliot"},
			{Quote: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
			{Quote: "This too shall pass.", Author: "Persian Proverb"},
			{Quote: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
			{Quote: "Fall seven times, stand up eight.", Author: "Japanese Proverb"},
			{Quote: "What lies behind us and what lies before us are tiny matters compared to what lies within us.", Author: "Ralph Waldo Emerson"},
		},
	}
}

// Random 随机返回一条名言
func (s *QuoteService) Random() model.Quote {
	return s.quotes[rand.Intn(len(s.quotes))]
}

// Count 名言数量
func (s *QuoteService) Count() int {
	return len(s.quotes)
}
