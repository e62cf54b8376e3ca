package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestSuggestRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Position string `json:"position"`
			ToMove   int    `json:"to_move"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Position == "" {
			t.Errorf("empty position forwarded to service")
		}
		json.NewEncoder(w).Encode(map[string]int{"from": 81, "to": 72})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	mv, err := c.Suggest(context.Background(), xiangqi.NewInitialPosition().Encode(), 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if (mv != xiangqi.Move{From: 81, To: 72}) {
		t.Fatalf("got %+v", mv)
	}
}

func TestSuggestErrors(t *testing.T) {
	if _, err := NewClient("").Suggest(context.Background(), "x", 0); err != ErrNoService {
		t.Fatalf("empty url: got %v, want ErrNoService", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	if _, err := NewClient(srv.URL).Suggest(context.Background(), "x", 0); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}
