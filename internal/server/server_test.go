package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3ngineer/UTube/internal/comment"
	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/like"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/playlist"
	"github.com/web3ngineer/UTube/internal/subscription"
	"github.com/web3ngineer/UTube/internal/tweet"
	"github.com/web3ngineer/UTube/internal/user"
	"github.com/web3ngineer/UTube/internal/video"
	"github.com/web3ngineer/UTube/internal/views"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type denyAll struct{}

func (denyAll) Allow(string) bool { return false }

type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{CORSOrigin: "http://localhost:5173"},
		Auth: config.AuthConfig{
			AccessTokenSecret:  "access",
			AccessTokenTTL:     time.Minute,
			RefreshTokenSecret: "refresh",
			RefreshTokenTTL:    time.Hour,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestRouter(t *testing.T, limiter RateLimiter, store Pinger) (http.Handler, *video.MockVideoService, *user.MockUserService) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	logger := logging.NewNopLogger()
	userRepo := user.NewMockUserRepository(ctrl)
	auth := common.NewAuthenticator(common.NewTokenManager(cfg), userRepo, logger)

	videos := video.NewMockVideoService(ctrl)
	users := user.NewMockUserService(ctrl)
	h := Handlers{
		Users:         user.NewHandler(users, cfg, logger),
		Videos:        video.NewHandler(videos, cfg, logger),
		Comments:      comment.NewHandler(comment.NewMockCommentService(ctrl), logger),
		Tweets:        tweet.NewHandler(tweet.NewMockTweetService(ctrl), logger),
		Likes:         like.NewHandler(like.NewMockLikeService(ctrl), logger),
		Subscriptions: subscription.NewHandler(subscription.NewMockSubscriptionService(ctrl), logger),
		Playlists:     playlist.NewHandler(playlist.NewMockPlaylistService(ctrl), logger),
	}
	return NewRouter(cfg, logger, auth, limiter, store, h), videos, users
}

func TestRouter_Health(t *testing.T) {
	router, _, _ := newTestRouter(t, allowAll{}, fakePinger{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")

	router, _, _ = newTestRouter(t, allowAll{}, fakePinger{err: errors.New("no primary")})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_MountsResources(t *testing.T) {
	router, videos, _ := newTestRouter(t, allowAll{}, fakePinger{})

	videos.EXPECT().ListVideos(gomock.Any(), gomock.Any()).
		Return(views.NewPage[views.VideoCard](nil, views.DefaultPageRequest(), 0), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(requestIDHeader))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _, _ := newTestRouter(t, allowAll{}, fakePinger{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router, _, _ := newTestRouter(t, allowAll{}, fakePinger{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/health", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	var body common.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusMethodNotAllowed, body.StatusCode)
	assert.Equal(t, "method not allowed", body.Message)
	assert.False(t, body.Success)
	assert.Equal(t, []string{}, body.Errors)
	assert.NotContains(t, rec.Body.String(), `"data"`)
}

func TestRouter_RateLimitsLogin(t *testing.T) {
	router, _, _ := newTestRouter(t, denyAll{}, fakePinger{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router, _, _ := newTestRouter(t, allowAll{}, fakePinger{})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `utube_http_requests_total{method="GET",route="/health",status="200"}`)
}

func TestCORS_Preflight(t *testing.T) {
	h := cors("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/videos", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	h := requestLogger(logging.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(rec.Header().Get(requestIDHeader))
	assert.NoError(t, err)
}

func TestRecoverer(t *testing.T) {
	h := recoverer(logging.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestIPRateLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(config.RateLimitConfig{Requests: 2, Window: time.Minute, Burst: 2, TTL: time.Hour}, func() time.Time { return now })

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"), "keys have separate budgets")

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("1.1.1.1"), "one token refills every window/requests")

	now = now.Add(2 * time.Hour)
	l.Allow("3.3.3.3")
	l.mu.Lock()
	_, kept := l.visitors["2.2.2.2"]
	l.mu.Unlock()
	assert.False(t, kept, "idle keys expire")
}
