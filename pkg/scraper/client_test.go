package scraper

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"persona-gen-go/internal/config"
	"persona-gen-go/pkg/log"
)

func TestMain(m *testing.M) {
	log.Init("error", "console", "")
	os.Exit(m.Run())
}

func TestExtractStyle(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"success":true,"data":{"writing_style":"Professional","tone_of_voice":"Formal","values":["A"],"preferred_formats":["Article"]}}`))
	}))
	defer srv.Close()

	client := NewClient(config.ScraperConfig{APIKey: "fc-test", BaseURL: srv.URL})
	profile, err := client.ExtractStyle(context.Background(), "https://x.com/blog")
	if err != nil {
		t.Fatalf("ExtractStyle: %v", err)
	}

	if gotPath != "/v1/extract" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer fc-test" {
		t.Fatalf("authorization = %q", gotAuth)
	}
	urls, ok := gotBody["urls"].([]interface{})
	if !ok || len(urls) != 1 || urls[0] != "https://x.com/blog" {
		t.Fatalf("urls = %v", gotBody["urls"])
	}
	if gotBody["prompt"] == "" || gotBody["schema"] == nil {
		t.Fatalf("prompt/schema missing: %v", gotBody)
	}

	if profile.WritingStyle != "Professional" || profile.ToneOfVoice != "Formal" {
		t.Fatalf("profile = %+v", profile)
	}
	if len(profile.Values) != 1 || profile.Values[0] != "A" {
		t.Fatalf("values = %v", profile.Values)
	}
}

func TestExtractStyleNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(config.ScraperConfig{APIKey: "fc-test", BaseURL: srv.URL})
	if _, err := client.ExtractStyle(context.Background(), "https://x.com/blog"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestExtractStyleReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	client := NewClient(config.ScraperConfig{APIKey: "fc-test", BaseURL: srv.URL})
	if _, err := client.ExtractStyle(context.Background(), "https://x.com/blog"); err == nil {
		t.Fatal("expected error when api reports failure")
	}
}
