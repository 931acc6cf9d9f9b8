package guest_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "hotie/infras/otel/mocks"
	"hotie/internal/domains/guest/model/dto"
	serviceMocks "hotie/internal/domains/guest/service/mocks"
	"hotie/internal/handlers/guest"
	"hotie/shared/failure"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(*serviceMocks.MockGuest)
		wantCode  int
		wantBody  string
	}{
		{
			name:     "create without a name",
			method:   http.MethodPost,
			target:   "/guests",
			body:     `{"email":"ada@example.com"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Guest name is required"}`,
		},
		{
			name:     "create with a malformed body",
			method:   http.MethodPost,
			target:   "/guests",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/guests",
			body:   `{"name":"Ada"}`,
			setupMock: func(s *serviceMocks.MockGuest) {
				s.EXPECT().Create(gomock.Any(), dto.CreateGuestRequest{Name: "Ada"}).Return(dto.GuestResponse{ID: 1, Name: "Ada"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:   "list failure",
			method: http.MethodGet,
			target: "/guests",
			setupMock: func(s *serviceMocks.MockGuest) {
				s.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to fetch guests"}`,
		},
		{
			name:   "missing guest",
			method: http.MethodGet,
			target: "/guests/9",
			setupMock: func(s *serviceMocks.MockGuest) {
				s.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.GuestResponse{}, failure.NotFound("Guest not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Guest not found"}`,
		},
		{
			name:     "negative id",
			method:   http.MethodPut,
			target:   "/guests/-1",
			body:     `{"name":"Ada"}`,
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Guest not found"}`,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/guests/1",
			setupMock: func(s *serviceMocks.MockGuest) {
				s.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"message":"Guest deleted successfully"}`,
		},
		{
			name:   "delete failure",
			method: http.MethodDelete,
			target: "/guests/1",
			setupMock: func(s *serviceMocks.MockGuest) {
				s.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to delete guest"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := serviceMocks.NewMockGuest(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			handler := guest.New(mockService, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
