package middleware

import (
	"crypto/subtle"
	"hotie/config"
	"hotie/infras/otel"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/transport/http/response"
	"net/http"
)

// Auth guards administrative routes.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires X-API-Key to match APP_API_KEY. Without a configured key
// the guard is open.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
			err := failure.Unauthorized(constant.ResponseErrorInvalidAPIKey)

			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err, constant.Empty)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
