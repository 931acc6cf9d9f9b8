package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotie/config"
	otelMocks "hotie/infras/otel/mocks"
	"hotie/shared/cache"
	cacheMocks "hotie/shared/cache/mocks"
	"hotie/shared/logger"
	"hotie/transport/http/middleware"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	t.Run("propagates the caller id", func(t *testing.T) {
		var seen string

		handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			seen = logger.RequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", res.Header().Get("X-Request-ID"))
	})

	t.Run("assigns one when missing", func(t *testing.T) {
		res := httptest.NewRecorder()
		mw.RequestID(ok).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		assert.Len(t, res.Header().Get("X-Request-ID"), 36)
	})
}

func TestTracing(t *testing.T) {
	recorder := otelMocks.NewRecorder()
	cfg := &config.Config{}
	cfg.App.Name = "hotie"

	mw := middleware.NewAppMiddleware(recorder, cfg, nil)

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Get("/rooms/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

	spans := recorder.Spans()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "GET /rooms/7", span.Name)
	assert.True(t, span.Ended)
	assert.Equal(t, "/rooms/{id}", span.Attributes["http.route"])
	assert.Equal(t, http.StatusInternalServerError, span.Attributes["http.status_code"])
	assert.Equal(t, "hotie", span.Attributes["app.name"])
	assert.Len(t, span.Errors, 1)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		req.Header.Set("User-Agent", "curl")

		return req
	}

	tests := []struct {
		name      string
		setupMock func(*cacheMocks.MockCache)
		wantCode  int
	}{
		{
			name: "first request opens a window",
			setupMock: func(c *cacheMocks.MockCache) {
				c.EXPECT().Get(gomock.Any(), "limiter_10.0.0.1_curl", gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), "limiter_10.0.0.1_curl", 1, 60).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "over the limit",
			setupMock: func(c *cacheMocks.MockCache) {
				c.EXPECT().Get(gomock.Any(), "limiter_10.0.0.1_curl", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*int) = 2

						return nil
					})
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "cache down lets requests through",
			setupMock: func(c *cacheMocks.MockCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := cacheMocks.NewMockCache(gomock.NewController(t))
			tt.setupMock(mockCache)

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)

			res := httptest.NewRecorder()
			mw.RateLimit()(ok).ServeHTTP(res, newRequest())

			assert.Equal(t, tt.wantCode, res.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		wantCode   int
	}{
		{name: "no key configured", wantCode: http.StatusNoContent},
		{name: "matching key", configured: "secret", sent: "secret", wantCode: http.StatusNoContent},
		{name: "missing key", configured: "secret", wantCode: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", sent: "guess", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			req := httptest.NewRequest(http.MethodPost, "/rooms", nil)
			if tt.sent != "" {
				req.Header.Set("X-API-Key", tt.sent)
			}

			res := httptest.NewRecorder()
			middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg).APIKey(ok).ServeHTTP(res, req)

			assert.Equal(t, tt.wantCode, res.Code)

			if tt.wantCode == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Invalid API key"}`, res.Body.String())
			}
		})
	}
}
