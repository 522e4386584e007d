package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func textResponse(w http.ResponseWriter, text string) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	})
}

func TestGenerateCredentials_OK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "secret" {
			t.Fatalf("api key header = %q, want secret", got)
		}

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Fatalf("expected JSON response mime type, got %+v", req.GenerationConfig)
		}
		if req.GenerationConfig.ResponseSchema == nil || req.GenerationConfig.ResponseSchema.Type != "ARRAY" {
			t.Fatalf("expected array response schema")
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "make two" {
			t.Fatalf("unexpected contents: %+v", req.Contents)
		}

		if err := textResponse(w, `[{"email":"a@accountbot.shop","password":"p1"},{"email":"b@x.com","password":"p2"}]`); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "secret", "test-model")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	creds, err := client.GenerateCredentials(ctx, "make two")
	if err != nil {
		t.Fatalf("GenerateCredentials error: %v", err)
	}
	if len(creds) != 2 || creds[1].Email != "b@x.com" || creds[1].Password != "p2" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestGenerateCredentials_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = textResponse(w, `not json`)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "secret", "").GenerateCredentials(context.Background(), "p")
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestGenerateCredentials_UnexpectedStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "secret", "").GenerateCredentials(context.Background(), "p")
	if err == nil {
		t.Fatalf("expected error for 429")
	}
}

func TestGenerate_NoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "secret", "").Chat(context.Background(), "", nil, "hi")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestChat_SendsHistoryAndInstruction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "be nice" {
			t.Fatalf("missing system instruction: %+v", req.SystemInstruction)
		}
		if len(req.Contents) != 3 {
			t.Fatalf("contents = %d, want 3", len(req.Contents))
		}
		if req.Contents[0].Role != "model" || req.Contents[1].Role != "user" || req.Contents[2].Parts[0].Text != "how?" {
			t.Fatalf("unexpected contents: %+v", req.Contents)
		}
		if req.GenerationConfig != nil {
			t.Fatalf("chat must not force a response schema")
		}
		_ = textResponse(w, "like this")
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "secret", "")
	history := []Message{
		{Role: "model", Text: "hello"},
		{Role: "user", Text: "hi"},
	}

	reply, err := client.Chat(context.Background(), "be nice", history, "how?")
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if reply != "like this" {
		t.Fatalf("reply = %q, want %q", reply, "like this")
	}
}

func TestClient_NotConfigured(t *testing.T) {
	var nilClient *Client
	if _, err := nilClient.GenerateCredentials(context.Background(), "p"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("nil client: err = %v, want ErrNotConfigured", err)
	}
	if _, err := NewClient("", "", "").Chat(context.Background(), "", nil, "hi"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("empty key: err = %v, want ErrNotConfigured", err)
	}
}
