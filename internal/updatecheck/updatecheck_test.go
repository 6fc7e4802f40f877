package updatecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckDetectsNewerRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing user agent")
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/r/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewCheckerWithEndpoint(server.URL)
	result, err := checker.Check(context.Background(), "v1.3.2")
	if err != nil {
		t.Fatal(err)
	}
	if !result.UpdateAvailable {
		t.Fatal("expected update available")
	}
	if result.Latest != "v1.4.0" {
		t.Fatalf("latest: got %q", result.Latest)
	}
	if result.URL != "https://example.com/r/v1.4.0" {
		t.Fatalf("url: got %q", result.URL)
	}
}

func TestCheckUpToDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.3.2"}`))
	}))
	defer server.Close()

	result, err := NewCheckerWithEndpoint(server.URL).Check(context.Background(), "v1.3.2")
	if err != nil {
		t.Fatal(err)
	}
	if result.UpdateAvailable {
		t.Fatal("expected no update")
	}
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	if _, err := NewCheckerWithEndpoint(server.URL).Check(context.Background(), "v1.0.0"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.10", "1.9", 1},
		{"2.0", "1.99.99", 1},
		{"1.2.3-beta", "1.2.3", 0},
		{"", "0.1", -1},
	}
	for _, tc := range cases {
		if got := CompareVersions(tc.a, tc.b); got != tc.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
