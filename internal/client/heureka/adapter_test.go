package heurekaclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tkadlec/conversions-backend/internal/errs"
)

func TestFetchDaySendsKeyAndDate(t *testing.T) {
	var gotKey, gotDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-heureka-api-key")
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`{"conversions":[{"date":"2025-06-01","click_source":"product_detail"}]}`))
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, "secret")
	recs, err := a.FetchDay(context.Background(), "2025-06-01")
	if err != nil {
		t.Fatalf("FetchDay error: %v", err)
	}
	if gotKey != "secret" {
		t.Fatalf("api key header mismatch: %q", gotKey)
	}
	if gotDate != "2025-06-01" {
		t.Fatalf("date param mismatch: %q", gotDate)
	}
	if len(recs) != 1 || recs[0].ClickSource != "product_detail" {
		t.Fatalf("payload mismatch: %+v", recs)
	}
}

func TestFetchDayMissingKey(t *testing.T) {
	a := NewAdapter("http://example.invalid", "")
	_, err := a.FetchDay(context.Background(), "2025-06-01")

	var perr *errs.ProviderError
	if !errors.As(err, &perr) || perr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 provider error, got %v", err)
	}
}

func TestFetchDayStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", 401, 401, "Neplatný nebo chybějící API klíč"},
		{"forbidden", 403, 403, "Chybí oprávnění"},
		{"bad date", 422, 422, "Špatný formát date"},
		{"server error", 500, 500, "API vrátilo chybu"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			a := NewAdapter(srv.URL, "secret")
			_, err := a.FetchDay(context.Background(), "2025-06-01")

			var perr *errs.ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ProviderError, got %v", err)
			}
			if perr.Status != tc.wantStatus || perr.Message != tc.wantMsg {
				t.Fatalf("got %d %q, want %d %q", perr.Status, perr.Message, tc.wantStatus, tc.wantMsg)
			}
		})
	}
}

func TestFetchDayInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, "secret")
	_, err := a.FetchDay(context.Background(), "2025-06-01")

	var perr *errs.ProviderError
	if !errors.As(err, &perr) || perr.Status != http.StatusBadGateway || !perr.Transient {
		t.Fatalf("expected transient 502, got %v", err)
	}
}

func TestFetchDayUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	a := NewAdapter(srv.URL, "secret")
	_, err := a.FetchDay(context.Background(), "2025-06-01")

	var perr *errs.ProviderError
	if !errors.As(err, &perr) || perr.Status != http.StatusBadGateway || !perr.Transient {
		t.Fatalf("expected transient 502, got %v", err)
	}
}
