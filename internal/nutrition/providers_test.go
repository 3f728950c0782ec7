package nutrition

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCalorieNinjasNotConfigured(t *testing.T) {
	p := &CalorieNinjas{client: &http.Client{Timeout: time.Second}}
	_, err := p.Search(context.Background(), "apple")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestCalorieNinjasNormalizesResponse(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"name":"apple","calories":52.1,"protein_g":0.3,"carbohydrates_total_g":14.1,"fat_total_g":0.2,"serving_size_g":182},
			{"name":"banana","calories":89}
		]}`))
	}))
	defer srv.Close()

	p := &CalorieNinjas{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}
	records, err := p.Search(context.Background(), "apple and banana")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotKey != "test-key" {
		t.Fatalf("expected X-Api-Key header, got %q", gotKey)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	apple := records[0]
	if apple.Name != "Apple" || apple.Calories != 52.1 || apple.Protein != 0.3 || apple.Carbs != 14.1 || apple.Fat != 0.2 || apple.ServingSize != 182 {
		t.Fatalf("apple not normalized: %+v", apple)
	}

	// Missing upstream fields default to 0 for macros, 100 for serving size.
	banana := records[1]
	if banana.Name != "Banana" || banana.Protein != 0 || banana.ServingSize != defaultServingSize {
		t.Fatalf("banana defaults wrong: %+v", banana)
	}
}

func TestCalorieNinjasUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	p := &CalorieNinjas{apiKey: "bad-key", baseURL: srv.URL, client: srv.Client()}
	if _, err := p.Search(context.Background(), "apple"); err == nil {
		t.Fatalf("expected error on non-200 response")
	}
}

func TestCalorieNinjasMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	p := &CalorieNinjas{apiKey: "test-key", baseURL: srv.URL, client: srv.Client()}
	if _, err := p.Search(context.Background(), "apple"); err == nil {
		t.Fatalf("expected error on malformed response")
	}
}

func TestEdamamNotConfigured(t *testing.T) {
	p := &Edamam{client: &http.Client{Timeout: time.Second}}
	_, err := p.Search(context.Background(), "apple")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestEdamamNormalizesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("app_id") != "id" || r.URL.Query().Get("app_key") != "key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"hints":[
			{"food":{"label":"Apple","nutrients":{"ENERC_KCAL":52,"PROCNT":0.3,"CHOCDF":13.8,"FAT":0.2}}},
			{"food":{"label":"Apple juice","nutrients":{"ENERC_KCAL":46}}}
		]}`))
	}))
	defer srv.Close()

	p := &Edamam{appID: "id", appKey: "key", baseURL: srv.URL, client: srv.Client()}
	records, err := p.Search(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	apple := records[0]
	if apple.Name != "Apple" || apple.Calories != 52 || apple.Carbs != 13.8 || apple.ServingSize != defaultServingSize {
		t.Fatalf("apple not normalized: %+v", apple)
	}

	juice := records[1]
	if juice.Protein != 0 || juice.Fat != 0 {
		t.Fatalf("missing nutrients should default to 0: %+v", juice)
	}
}
