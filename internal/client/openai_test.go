package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestOpenAIClientChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("expected bearer auth, got %q", r.Header.Get("Authorization"))
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-3.5-turbo" {
			t.Fatalf("expected model gpt-3.5-turbo, got %q", req.Model)
		}
		if req.MaxTokens != 150 {
			t.Fatalf("expected max_tokens 150, got %d", req.MaxTokens)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("expected system+user messages, got %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "You are not alone."}},
			},
		})
	}))
	defer server.Close()

	c := NewOpenAIClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())

	reply, err := c.SimpleChat(context.Background(), "be kind", "I feel sad")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "You are not alone." {
		t.Fatalf("expected reply, got %q", reply)
	}
}

func TestOpenAIClientNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
	}))
	defer server.Close()

	c := NewOpenAIClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())

	if _, err := c.SimpleChat(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestOpenAIClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	c := NewOpenAIClient(server.URL, "test-key", "gpt-3.5-turbo", zap.NewNop())

	if _, err := c.SimpleChat(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error on empty choices")
	}
}
