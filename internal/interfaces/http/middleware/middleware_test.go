package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/config"
	"github.com/petalline/storefront/internal/pkg/auth"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus/hooks/test"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLocalLimiterRejectsAfterBurst(t *testing.T) {
	logger, _ := test.NewNullLogger()
	r := newRouter(RateLimit(NewLocalLimiter(60, 2), logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "60" {
			t.Fatalf("missing limit header")
		}
	}

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Rate limit exceeded") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestLocalLimiterIsPerClient(t *testing.T) {
	l := NewLocalLimiter(60, 1)
	ctx := context.Background()

	if ok, _, _ := l.Allow(ctx, "10.0.0.1"); !ok {
		t.Fatalf("first request should pass")
	}
	if ok, _, _ := l.Allow(ctx, "10.0.0.1"); ok {
		t.Fatalf("second request from the same client should be limited")
	}
	if ok, _, _ := l.Allow(ctx, "10.0.0.2"); !ok {
		t.Fatalf("other clients keep their own bucket")
	}
}

func TestIdleLocalBucketsAreEvicted(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	l := newLocalLimiterWithClock(600, 50, func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		l.Allow(ctx, fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	if l.Clients() != 1000 {
		t.Fatalf("expected 1000 buckets, got %d", l.Clients())
	}

	now = now.Add(refillTime(600, 50) + time.Second)
	if l.Clients() != 0 {
		t.Fatalf("expected idle buckets to be evicted, got %d", l.Clients())
	}
}

func TestRefillTime(t *testing.T) {
	if got := refillTime(600, 50); got != time.Minute {
		t.Fatalf("expected the one minute floor, got %v", got)
	}
	if got := refillTime(10, 50); got != 5*time.Minute {
		t.Fatalf("expected 5m, got %v", got)
	}
}

func TestWindowDecisionCountsFromIncrement(t *testing.T) {
	cases := []struct {
		count     int64
		allowed   bool
		remaining int
	}{
		{1, true, 2},
		{3, true, 0},
		{4, false, 0},
		{100, false, 0},
	}
	for _, tc := range cases {
		allowed, remaining := windowDecision(tc.count, 3)
		if allowed != tc.allowed || remaining != tc.remaining {
			t.Fatalf("count %d: expected %v/%d, got %v/%d", tc.count, tc.allowed, tc.remaining, allowed, remaining)
		}
	}

	// concurrent requests each see a distinct post-increment count, so exactly limit pass
	passed := 0
	for count := int64(1); count <= 50; count++ {
		if ok, _ := windowDecision(count, 20); ok {
			passed++
		}
	}
	if passed != 20 {
		t.Fatalf("expected exactly 20 admitted, got %d", passed)
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer client.Close()
	l := NewRedisLimiter(client, 5)

	allowed, remaining, err := l.Allow(context.Background(), "10.0.0.1")
	if err == nil || !allowed || remaining != 5 {
		t.Fatalf("expected the request through with an error, got %v %d %v", allowed, remaining, err)
	}
}

func TestTimeoutRespondsWhenHandlerStalls(t *testing.T) {
	r := newRouter(Timeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	if rec := serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)); rec.Code != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", rec.Code)
	}
	if rec := serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTimeoutSkipsEventStreams(t *testing.T) {
	r := newRouter(Timeout(time.Millisecond))
	r.GET("/events", func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Accept", "text/event-stream")
	if rec := serve(r, req); rec.Code != http.StatusOK {
		t.Fatalf("event streams should carry no deadline, got %d", rec.Code)
	}
}

func TestSessionReplacesInvalidCookie(t *testing.T) {
	r := newRouter(Session(true))
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, GetSessionID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
	rec := serve(r, req)

	if rec.Body.String() == "not-a-uuid" || !validSessionID(rec.Body.String()) {
		t.Fatalf("expected a fresh session id, got %q", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].HttpOnly || !cookies[0].Secure || cookies[0].MaxAge != sessionMaxAge {
		t.Fatalf("unexpected cookie %+v", cookies)
	}
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS(config.SecurityConfig{
		CORSAllowedOrigins: []string{"*.petalline.test"},
		CORSAllowedMethods: []string{"GET", "POST"},
		CORSAllowedHeaders: []string{"Content-Type"},
	}))
	r.GET("/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/cart", nil)
	req.Header.Set("Origin", "https://shop.petalline.test")
	rec := serve(r, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://shop.petalline.test" {
		t.Fatalf("origin should be allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = serve(r, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unknown origin must not be echoed")
	}
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	r := newRouter(RequestID(), SecurityHeaders("Petalline"))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Frame-Options") != "DENY" || rec.Header().Get("Server") != "Petalline" {
		t.Fatalf("missing security headers %+v", rec.Header())
	}
	if rec.Body.String() == "" || rec.Header().Get(RequestIDHeader) != rec.Body.String() {
		t.Fatalf("request id should be generated and echoed")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	if rec := serve(r, req); rec.Body.String() != "abc-123" {
		t.Fatalf("caller request id should be kept, got %q", rec.Body.String())
	}
}

func TestRequestSizeLimit(t *testing.T) {
	r := newRouter(RequestSizeLimit(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 32))))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", "Petalline", time.Hour)
	r := newRouter()
	r.GET("/me", AuthMiddleware(jwtManager), func(c *gin.Context) {
		username, _ := GetUsernameFromContext(c)
		c.String(http.StatusOK, username)
	})
	r.GET("/optional", OptionalAuthMiddleware(jwtManager), func(c *gin.Context) {
		if _, ok := GetUsernameFromContext(c); ok {
			c.String(http.StatusOK, "signed-in")
			return
		}
		c.String(http.StatusOK, "guest")
	})

	if rec := serve(r, httptest.NewRequest(http.MethodGet, "/me", nil)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	bad := httptest.NewRequest(http.MethodGet, "/me", nil)
	bad.Header.Set("Authorization", "Bearer nope")
	if rec := serve(r, bad); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}

	token, err := jwtManager.GenerateAccessToken("demo", "demo@petalline.test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if rec := serve(r, req); rec.Code != http.StatusOK || rec.Body.String() != "demo" {
		t.Fatalf("unexpected %d %q", rec.Code, rec.Body.String())
	}

	if rec := serve(r, httptest.NewRequest(http.MethodGet, "/optional", nil)); rec.Body.String() != "guest" {
		t.Fatalf("anonymous requests should pass as guest")
	}
	req = httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if rec := serve(r, req); rec.Body.String() != "signed-in" {
		t.Fatalf("valid token should attach the user")
	}
}
