package emotion

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
)

type mockTagger struct {
	predictions []Prediction
	err         error
}

func (m *mockTagger) Predict(text string) ([]Prediction, error) {
	return m.predictions, m.err
}

func TestDetectEmptyInput(t *testing.T) {
	detector := NewDetector(nil, zap.NewNop())

	for _, text := range []string{"", "   ", "\t\n  "} {
		result := detector.Detect(text)
		if result.Emotion != Neutral {
			t.Fatalf("expected neutral for %q, got %s", text, result.Emotion)
		}
		if result.Confidence != 0.0 {
			t.Fatalf("expected confidence 0.0, got %f", result.Confidence)
		}
		if result.Method != MethodDefault {
			t.Fatalf("expected method default, got %s", result.Method)
		}
	}
}

func TestDetectSingleKeywordPerCategory(t *testing.T) {
	detector := NewDetector(nil, zap.NewNop())

	cases := map[string]string{
		"today I feel cheerful":          Joy,
		"everything seems gloomy":        Sadness,
		"that remark was hostile":        Anger,
		"I feel uneasy about the result": Fear,
	}

	for text, want := range cases {
		result := detector.Detect(text)
		if result.Emotion != want {
			t.Fatalf("text %q: expected %s, got %s", text, want, result.Emotion)
		}
		if result.Method != MethodKeywords {
			t.Fatalf("expected method keywords, got %s", result.Method)
		}
	}
}

func TestDetectConfidenceScaling(t *testing.T) {
	detector := NewDetector(nil, zap.NewNop())

	// sadness 命中 3 个关键词，joy 命中 1 个：置信度 = 0.5 + (3/4)*0.4 = 0.8
	result := detector.Detect("I feel depressed, gloomy and heartbroken, though last week I was cheerful")
	if result.Emotion != Sadness {
		t.Fatalf("expected sadness, got %s", result.Emotion)
	}
	if math.Abs(result.Confidence-0.8) > 1e-9 {
		t.Fatalf("expected confidence 0.8, got %f", result.Confidence)
	}
}

func TestDetectConfidenceCap(t *testing.T) {
	detector := NewDetector(nil, zap.NewNop())

	// 2 个 fear 关键词，总命中 2：min(0.9, 0.5+(2/2)*0.4) = 0.9
	result := detector.Detect("I am so scared and terrified of my exam tomorrow")
	if result.Emotion != Fear {
		t.Fatalf("expected fear, got %s", result.Emotion)
	}
	if math.Abs(result.Confidence-0.9) > 1e-9 {
		t.Fatalf("expected confidence 0.9, got %f", result.Confidence)
	}
	if result.Method != MethodKeywords {
		t.Fatalf("expected method keywords, got %s", result.Method)
	}
}

func TestDetectNoKeywordMatch(t *testing.T) {
	detector := NewDetector(nil, zap.NewNop())

	result := detector.Detect("the weather report said nothing unusual")
	if result.Emotion != Neutral {
		t.Fatalf("expected neutral, got %s", result.Emotion)
	}
	if result.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %f", result.Confidence)
	}
}

func TestDetectModelPath(t *testing.T) {
	tagger := &mockTagger{
		predictions: []Prediction{
			{Emotion: "SADNESS", Confidence: 0.87},
			{Emotion: "NEUTRAL", Confidence: 0.1},
		},
	}
	detector := NewDetector(tagger, zap.NewNop())

	result := detector.Detect("anything at all")
	if result.Emotion != Sadness {
		t.Fatalf("expected sadness, got %s", result.Emotion)
	}
	if result.Confidence != 0.87 {
		t.Fatalf("expected confidence 0.87, got %f", result.Confidence)
	}
	if result.Method != MethodModel {
		t.Fatalf("expected method model, got %s", result.Method)
	}
	if len(result.All) != 2 {
		t.Fatalf("expected 2 ranked predictions, got %d", len(result.All))
	}
}

func TestDetectModelFailureFallsBack(t *testing.T) {
	tagger := &mockTagger{err: errors.New("model unavailable")}
	detector := NewDetector(tagger, zap.NewNop())

	result := detector.Detect("I am furious about this")
	if result.Emotion != Anger {
		t.Fatalf("expected anger, got %s", result.Emotion)
	}
	if result.Method != MethodKeywords {
		t.Fatalf("expected method keywords, got %s", result.Method)
	}
}

func TestNormalizeSynonyms(t *testing.T) {
	cases := map[string]string{
		"sad":     Sadness,
		"angry":   Anger,
		"anxious": Fear,
		"afraid":  Fear,
		"happy":   Joy,
		"excited": Joy,
		"joy":     Joy,
		"neutral": Neutral,
		"disgust": Neutral,
		"":        Neutral,
	}

	for label, want := range cases {
		if got := Normalize(label); got != want {
			t.Fatalf("Normalize(%q): expected %s, got %s", label, want, got)
		}
	}
}
