package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cognisentinel/cognisentinel-go/internal/model"
	"go.uber.org/zap"
)

func TestForwardToBot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webhooks/rest/webhook" {
			t.Fatalf("expected rest webhook path, got %s", r.URL.Path)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["sender"] != "sender-1" || req["message"] != "hello" {
			t.Fatalf("unexpected request body: %+v", req)
		}

		json.NewEncoder(w).Encode([]model.BotReply{
			{RecipientID: "sender-1", Text: "Hi, how are you feeling today?"},
		})
	}))
	defer server.Close()

	s := NewRelayService(server.URL, NewSessionService(zap.NewNop()), nil, zap.NewNop())

	replies, err := s.forwardToBot("sender-1", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replies) != 1 || replies[0].Text != "Hi, how are you feeling today?" {
		t.Fatalf("unexpected replies: %+v", replies)
	}
}

func TestForwardToBotNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
	}))
	defer server.Close()

	s := NewRelayService(server.URL, NewSessionService(zap.NewNop()), nil, zap.NewNop())

	if _, err := s.forwardToBot("sender-1", "hello"); err == nil {
		t.Fatalf("expected error on 502")
	}
}

func TestQuoteServiceRandom(t *testing.T) {
	s := NewQuoteService()

	if s.Count() == 0 {
		t.Fatalf("expected built-in quotes")
	}

	quote := s.Random()
	if quote.Quote == "" || quote.Author == "" {
		t.Fatalf("expected non-empty quote, got %+v", quote)
	}
}

func TestSessionServiceOfflineSend(t *testing.T) {
	s := NewSessionService(zap.NewNop())

	if err := s.Send("nobody", model.ChatAck{Success: true}); err != ErrClientOffline {
		t.Fatalf("expected ErrClientOffline, got %v", err)
	}
	if s.OnlineCount() != 0 {
		t.Fatalf("expected 0 online clients, got %d", s.OnlineCount())
	}
}
