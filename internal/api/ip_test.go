package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestFrom(remote, forwarded string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/login_check", nil)
	req.RemoteAddr = remote
	if forwarded != "" {
		req.Header.Set("X-Forwarded-For", forwarded)
	}
	req.Header.Set("X-Real-IP", "198.51.100.250")
	return req
}

func TestNewIPExtractor_IgnoresHeadersWithoutProxies(t *testing.T) {
	extract, err := NewIPExtractor(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := extract(requestFrom("203.0.113.7:5123", "198.51.100.4")); got != "203.0.113.7" {
		t.Fatalf("expected socket address, got %q", got)
	}
}

func TestNewIPExtractor_TrustedProxy(t *testing.T) {
	extract, err := NewIPExtractor([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := extract(requestFrom("10.1.2.3:5123", "198.51.100.4")); got != "198.51.100.4" {
		t.Fatalf("expected forwarded client, got %q", got)
	}
	if got := extract(requestFrom("203.0.113.7:5123", "198.51.100.4")); got != "203.0.113.7" {
		t.Fatalf("untrusted peer must not choose its ip, got %q", got)
	}
}

func TestNewIPExtractor_InvalidRange(t *testing.T) {
	if _, err := NewIPExtractor([]string{"not-a-cidr"}); err == nil {
		t.Fatal("expected error")
	}
}
