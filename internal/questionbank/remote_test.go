package questionbank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRemoteProvider_FetchesAndSamples(t *testing.T) {
	var gotRole, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.URL.Query().Get("role")
		gotType = r.URL.Query().Get("type")
		json.NewEncoder(w).Encode(remoteQuestionsResponse{
			Questions: []string{"q1", "q2", "q3", "q4"},
		})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, nil, time.Minute, zap.NewNop())
	got := p.Questions(context.Background(), "Software Engineer", "backend", "technical", 2)

	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if gotRole != "Software Engineer" || gotType != "technical" {
		t.Errorf("query params not forwarded: role=%q type=%q", gotRole, gotType)
	}
}

func TestRemoteProvider_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, nil, time.Minute, zap.NewNop())
	got := p.Questions(context.Background(), "Analyst", "any", "behavioral", 10)

	if len(got) != 5 {
		t.Fatalf("expected the 5-item fallback, got %d", len(got))
	}
	if got[0] != "Generic behavioral question 1 for Analyst" {
		t.Errorf("unexpected fallback question: %q", got[0])
	}
}

func TestRemoteProvider_UnreachableFallsBack(t *testing.T) {
	p := NewRemoteProvider("http://127.0.0.1:1", nil, time.Minute, zap.NewNop())
	got := p.Questions(context.Background(), "Analyst", "any", "technical", 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 sampled fallback questions, got %d", len(got))
	}
}

func TestRemoteProvider_EmptyBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remoteQuestionsResponse{})
	}))
	defer srv.Close()

	p := NewRemoteProvider(srv.URL, nil, time.Minute, zap.NewNop())
	got := p.Questions(context.Background(), "Analyst", "any", "technical", 10)

	if len(got) != 5 {
		t.Fatalf("expected the 5-item fallback, got %d", len(got))
	}
}
