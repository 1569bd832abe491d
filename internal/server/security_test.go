package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	mw := AuthMiddleware("secret", nil, NewAbuseDetector())(okHandler())

	tests := []struct {
		name string
		path string
		key  string
		want int
	}{
		{"valid key", "/api/v1/recipes", "secret", http.StatusOK},
		{"wrong key", "/api/v1/recipes", "nope", http.StatusUnauthorized},
		{"missing key", "/api/v1/command", "", http.StatusUnauthorized},
		{"public healthz", "/healthz", "", http.StatusOK},
		{"public swagger", "/swagger/index.html", "", http.StatusOK},
		{"public metrics", "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rr := httptest.NewRecorder()
			mw.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestAuthMiddleware_CountsFailures(t *testing.T) {
	detector := NewAbuseDetector()
	mw := AuthMiddleware("secret", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		mw.ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuth["10.0.0.9"])
}

func TestAbuseDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewAbuseDetector()
	d.now = func() time.Time { return now }
	d.windowStart = now

	for i := 0; i < MaxRequestsPerWindow; i++ {
		assert.True(t, d.Allow("1.2.3.4"))
	}
	assert.False(t, d.Allow("1.2.3.4"))
	assert.True(t, d.Allow("5.6.7.8"), "limits are per client")

	now = now.Add(AbuseWindow + time.Second)
	assert.True(t, d.Allow("1.2.3.4"))
}

func TestRateLimitMiddleware(t *testing.T) {
	d := NewAbuseDetector()
	d.requests["192.0.2.1"] = MaxRequestsPerWindow

	mw := RateLimitMiddleware(nil, d)(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		xff     string
		trusted []string
		want    string
	}{
		{"direct", "203.0.113.5:999", "", nil, "203.0.113.5"},
		{"untrusted proxy ignores header", "203.0.113.5:999", "1.1.1.1", nil, "203.0.113.5"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "6.6.6.6, 1.1.1.1", []string{"10.0.0.1"}, "1.1.1.1"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set(HeaderForwardedFor, tt.xff)
			}
			assert.Equal(t, tt.want, clientIP(req, tt.trusted))
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rr.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rr.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rr.Header().Get(HeaderReferrerPolicy))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAPIKey, "secret")
	h.Set(HeaderAuthorization, "Bearer x")
	h.Set("Accept", "application/json")

	out := redactHeaders(h)
	assert.Equal(t, RedactedValue, out.Get(HeaderAPIKey))
	assert.Equal(t, RedactedValue, out.Get(HeaderAuthorization))
	assert.Equal(t, "application/json", out.Get("Accept"))
	assert.Equal(t, "secret", h.Get(HeaderAPIKey), "input is not modified")
}
