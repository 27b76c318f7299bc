package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"article-api/internal/observability/metrics"
)

// newTestLimiter returns a limiter driven by a manual clock.
func newTestLimiter(rps float64, burst int) (*IPRateLimiter, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewIPRateLimiter(rps, burst)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestIPRateLimiter_Burst(t *testing.T) {
	rl, _ := newTestLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.allow("192.0.2.1") {
			t.Fatalf("request %d rejected within burst", i+1)
		}
	}
	if rl.allow("192.0.2.1") {
		t.Error("request beyond burst was allowed")
	}
}

func TestIPRateLimiter_Refill(t *testing.T) {
	rl, now := newTestLimiter(2, 1)

	if !rl.allow("192.0.2.1") {
		t.Fatal("first request rejected")
	}
	if rl.allow("192.0.2.1") {
		t.Fatal("second request allowed before refill")
	}

	*now = now.Add(500 * time.Millisecond)
	if !rl.allow("192.0.2.1") {
		t.Error("request rejected after token refill")
	}
}

func TestIPRateLimiter_SeparateBuckets(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)

	if !rl.allow("192.0.2.1") || !rl.allow("192.0.2.2") {
		t.Fatal("each IP should get its own bucket")
	}
	if rl.allow("192.0.2.1") {
		t.Error("first IP should be exhausted")
	}
	if got := rl.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestIPRateLimiter_Concurrent(t *testing.T) {
	rl, _ := newTestLimiter(1, 50)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("192.0.2.9") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("allowed = %d, want 50", allowed)
	}
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)
	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/Article", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", rec.Code)
	}

	before := testutil.ToFloat64(metrics.HTTPRateLimitedTotal)
	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1" {
		t.Errorf("Retry-After = %q, want 1", rec.Header().Get("Retry-After"))
	}
	if got := testutil.ToFloat64(metrics.HTTPRateLimitedTotal) - before; got != 1 {
		t.Errorf("rate limited counter increased by %v, want 1", got)
	}
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	rl, now := newTestLimiter(1, 1)

	rl.allow("192.0.2.1")
	*now = now.Add(10 * time.Minute)
	rl.allow("192.0.2.2")

	if removed := rl.Cleanup(5 * time.Minute); removed != 1 {
		t.Errorf("Cleanup removed %d, want 1", removed)
	}
	if got := rl.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestIPRateLimiter_StartCleanupStops(t *testing.T) {
	rl := NewIPRateLimiter(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.StartCleanup(ctx, 10*time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StartCleanup did not return after cancel")
	}
}

func TestIPRateLimiter_SpoofedForwardedFor(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)
	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/Article", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		switch rec.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}

	if allowed != 1 {
		t.Errorf("allowed = %d, want 1", allowed)
	}
	if got := rl.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestIPRateLimiter_ClientIP(t *testing.T) {
	proxies, err := ParseProxyList([]string{"10.0.0.0/8", "2001:db8::1"})
	if err != nil {
		t.Fatalf("ParseProxyList: %v", err)
	}
	rl := NewIPRateLimiter(1, 1).TrustProxies(proxies)

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		xri        string
		want       string
	}{
		{"remote addr", "192.0.2.1:1234", "", "", "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", "", "", "192.0.2.1"},
		{"untrusted peer ignores forwarded for", "192.0.2.1:1234", "203.0.113.5", "", "192.0.2.1"},
		{"untrusted peer ignores real ip", "192.0.2.1:1234", "", "198.51.100.1", "192.0.2.1"},
		{"trusted proxy forwarded for wins", "10.0.0.1:1", "203.0.113.5, 10.0.0.2", "198.51.100.1", "203.0.113.5"},
		{"trusted proxy real ip", "10.0.0.1:1", "", "198.51.100.1", "198.51.100.1"},
		{"trusted proxy invalid forwarded for", "10.0.0.1:1", "garbage", "", "10.0.0.1"},
		{"trusted ipv6 proxy", "[2001:db8::1]:443", "203.0.113.7", "", "203.0.113.7"},
		{"untrusted ipv6", "[2001:db8::2]:443", "203.0.113.7", "", "2001:db8::2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := rl.clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPRateLimiter_NoTrustedProxies(t *testing.T) {
	rl := NewIPRateLimiter(1, 1)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:9000"
	req.Header.Set("X-Forwarded-For", "203.0.113.5")

	if got := rl.clientIP(req); got != "127.0.0.1" {
		t.Errorf("clientIP() = %q, want 127.0.0.1", got)
	}
}

func TestParseProxyList(t *testing.T) {
	got, err := ParseProxyList([]string{" 192.0.2.10 ", "", "172.16.5.0/12", "::1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []netip.Prefix{
		netip.MustParsePrefix("192.0.2.10/32"),
		netip.MustParsePrefix("172.16.0.0/12"),
		netip.MustParsePrefix("::1/128"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("prefix %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := ParseProxyList([]string{"10.0.0.0/8", "proxy.internal"}); err == nil {
		t.Error("expected error for hostname entry")
	}
}

func TestParseFirstIP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"203.0.113.5", "203.0.113.5"},
		{" 203.0.113.5 , 10.0.0.1", "203.0.113.5"},
		{"not-an-ip, 10.0.0.1", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := parseFirstIP(tt.in); got != tt.want {
			t.Errorf("parseFirstIP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
