package emotion

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPTaggerPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" {
			t.Fatalf("expected /predict, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"labels": [{"emotion": "fear", "confidence": 0.92}, {"emotion": "sadness", "confidence": 0.05}]}`))
	}))
	defer server.Close()

	tagger := NewHTTPTagger(server.URL)

	predictions, err := tagger.Predict("I'm terrified")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
	if predictions[0].Emotion != "fear" || predictions[0].Confidence != 0.92 {
		t.Fatalf("unexpected top prediction: %+v", predictions[0])
	}
}

func TestHTTPTaggerErrors(t *testing.T) {
	t.Run("non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(500)
		}))
		defer server.Close()

		if _, err := NewHTTPTagger(server.URL).Predict("text"); err == nil {
			t.Fatalf("expected error on 500")
		}
	})

	t.Run("empty labels", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"labels": []}`))
		}))
		defer server.Close()

		if _, err := NewHTTPTagger(server.URL).Predict("text"); err == nil {
			t.Fatalf("expected error on empty labels")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		if _, err := NewHTTPTagger(server.URL).Predict("text"); err == nil {
			t.Fatalf("expected connection error")
		}
	})
}
