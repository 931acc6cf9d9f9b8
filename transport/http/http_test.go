package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotie/config"
	kafkaMocks "hotie/infras/kafka/mocks"
	otelMocks "hotie/infras/otel/mocks"
	roomMocks "hotie/internal/domains/room/mocks"
	"hotie/transport/http/middleware"
	"hotie/transport/http/router"
)

func newServer() *HTTP {
	return newServerWith(func(*config.Config) {})
}

func newServerWith(configure func(cfg *config.Config)) *HTTP {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}
	configure(cfg)

	ot := otelMocks.NewOtel()
	r := router.New(router.DomainHandlers{}, middleware.NewAppMiddleware(ot, cfg, nil), middleware.NewAuthMiddleware(ot, cfg))

	return New(cfg, r, nil, nil)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
		wantKey  string
		wantBody string
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK, wantKey: "message", wantBody: "OK"},
		{name: "draining", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable, wantKey: "error", wantBody: "SERVER PREPARING TO SHUT DOWN"},
		{name: "cleaning up", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable, wantKey: "error", wantBody: "SERVER PREPARING TO SHUT DOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer()
			handler := server.Handler()
			server.state.Store(int32(tt.state))

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, res.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body[tt.wantKey])
		})
	}
}

func TestCORS(t *testing.T) {
	handler := newServer().Handler()

	req := httptest.NewRequest(http.MethodOptions, "/rooms", nil)
	req.Header.Set("Origin", "http://frontend.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, "*", res.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	handler := newServer().Handler()

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestSwagger(t *testing.T) {
	t.Run("serves the api document", func(t *testing.T) {
		handler := newServerWith(func(cfg *config.Config) { cfg.App.Swagger.Enable = true }).Handler()

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, res.Code)

		var doc struct {
			Paths               map[string]map[string]any `json:"paths"`
			SecurityDefinitions map[string]any            `json:"securityDefinitions"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &doc))

		for _, path := range []string{"/rooms", "/rooms/available", "/rooms/{id}", "/bookings/{id}", "/guests", "/payments/{id}", "/housekeeping"} {
			assert.Contains(t, doc.Paths, path)
		}

		assert.Contains(t, doc.Paths["/rooms"]["post"], "security")
		assert.NotContains(t, doc.Paths["/rooms"]["get"], "security")
		assert.Contains(t, doc.SecurityDefinitions, "ApiKeyAuth")
	})

	t.Run("serves the ui", func(t *testing.T) {
		handler := newServerWith(func(cfg *config.Config) { cfg.App.Swagger.Enable = true }).Handler()

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		handler := newServer().Handler()

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestCloseKafka_WaitsForPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockLifecycle := roomMocks.NewMockManager(ctrl)

	gomock.InOrder(
		mockLifecycle.EXPECT().Wait(),
		mockKafka.EXPECT().Close().Return(nil),
	)

	server := newServer()
	server.Kafka = mockKafka
	server.Lifecycle = mockLifecycle

	server.closeKafka()
}
