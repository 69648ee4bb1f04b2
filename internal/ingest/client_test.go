package ingest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSourceClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"date":"15/03/2026","operator":"Ana","callOutcome":"Atendida"}]`))
	}))
	defer srv.Close()

	logger := zerolog.New(&bytes.Buffer{})
	client := NewSourceClient(srv.URL, 5*time.Second, logger)

	records, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Operator != "Ana" {
		t.Errorf("expected operator Ana, got %s", records[0].Operator)
	}
}

func TestSourceClientFetchErrors(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})

	t.Run("empty url", func(t *testing.T) {
		client := NewSourceClient("", time.Second, logger)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("expected error for empty url")
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewSourceClient(srv.URL, time.Second, logger)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("expected error for 500 response")
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"}`))
		}))
		defer srv.Close()

		client := NewSourceClient(srv.URL, time.Second, logger)
		if _, err := client.Fetch(context.Background()); err == nil {
			t.Error("expected error for non-array payload")
		}
	})
}
