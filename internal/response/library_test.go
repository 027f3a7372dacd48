package response

import (
	"testing"

	"github.com/cognisentinel/cognisentinel-go/internal/emotion"
)

func TestLibraryCoversAllCanonicalLabels(t *testing.T) {
	for _, label := range emotion.Categories {
		if len(Empathetic(label)) == 0 {
			t.Fatalf("no empathetic responses for %s", label)
		}
		if len(Techniques(label)) == 0 {
			t.Fatalf("no techniques for %s", label)
		}
		if CopingIntro(label) == "" {
			t.Fatalf("no coping intro for %s", label)
		}
	}
}

func TestLibrarySynonymLookup(t *testing.T) {
	// 同义词归一化必须是全映射：每个同义词都能落到两张表的有效键上
	for _, synonym := range []string{"sad", "angry", "anxious", "afraid", "happy", "excited"} {
		if len(Empathetic(synonym)) == 0 {
			t.Fatalf("synonym %s resolves to no empathetic responses", synonym)
		}
		if len(Techniques(synonym)) == 0 {
			t.Fatalf("synonym %s resolves to no techniques", synonym)
		}
	}
}

func TestLibraryUnknownLabelFallsBackToNeutral(t *testing.T) {
	unknown := Empathetic("bewildered")
	neutral := Empathetic(emotion.Neutral)

	if len(unknown) != len(neutral) {
		t.Fatalf("expected neutral fallback, got %d responses", len(unknown))
	}
	for i := range unknown {
		if unknown[i] != neutral[i] {
			t.Fatalf("expected neutral responses for unknown label")
		}
	}
}
