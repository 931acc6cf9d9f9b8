package booking_test

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
	"hotie/internal/domains/booking/model/dto"
	serviceMocks "hotie/internal/domains/booking/service/mocks"
	"hotie/internal/handlers/booking"
	"hotie/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *serviceMocks.MockBooking) {
	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(mockService, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, mockService
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))

	return recorder
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{"guest_id":1,"room_id":3,"check_in":"2026-03-01","check_out":"2026-03-04"}`

	tests := []struct {
		name      string
		body      string
		setupMock func(*serviceMocks.MockBooking)
		wantCode  int
		wantBody  string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(s *serviceMocks.MockBooking) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{ID: 5, GuestID: 1, RoomID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-04", Status: "Reserved"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"id":5,"guest_id":1,"room_id":3,"check_in":"2026-03-01","check_out":"2026-03-04","status":"Reserved"}`,
		},
		{
			name:     "missing fields",
			body:     `{"guest_id":1}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"guest_id, room_id, check_in, and check_out are required"}`,
		},
		{
			name:     "empty body",
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"guest_id, room_id, check_in, and check_out are required"}`,
		},
		{
			name:     "malformed date",
			body:     `{"guest_id":1,"room_id":3,"check_in":"tomorrow","check_out":"2026-03-04"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room already booked",
			body: validBody,
			setupMock: func(s *serviceMocks.MockBooking) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.RoomNotAvailable)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Room is not available"}`,
		},
		{
			name: "store failure",
			body: validBody,
			setupMock: func(s *serviceMocks.MockBooking) {
				s.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to create booking"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(mockService)
			}

			res := serve(router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantCode, res.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, res.Body.String())
			}
		})
	}
}

func TestHandler_GetBookingByID(t *testing.T) {
	t.Run("non numeric id", func(t *testing.T) {
		router, _ := newRouter(t)

		res := serve(router, http.MethodGet, "/bookings/abc", "")

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.JSONEq(t, `{"error":"Booking not found"}`, res.Body.String())
	})

	t.Run("found", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Get(gomock.Any(), int64(5)).Return(dto.BookingResponse{ID: 5, Status: "Reserved"}, nil)

		res := serve(router, http.MethodGet, "/bookings/5", "")

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), `"id":5`)
	})
}

func TestHandler_UpdateBooking(t *testing.T) {
	router, mockService := newRouter(t)
	status := "Checked-Out"

	mockService.EXPECT().Update(gomock.Any(), dto.UpdateBookingRequest{Status: &status}, int64(5)).
		Return(dto.BookingResponse{ID: 5, Status: status}, nil)

	res := serve(router, http.MethodPut, "/bookings/5", `{"status":"Checked-Out"}`)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"status":"Checked-Out"`)
}

func TestHandler_DeleteBooking(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		res := serve(router, http.MethodDelete, "/bookings/5", "")

		assert.Equal(t, http.StatusOK, res.Code)
		assert.JSONEq(t, `{"message":"Booking deleted successfully"}`, res.Body.String())
	})

	t.Run("already deleted", func(t *testing.T) {
		router, mockService := newRouter(t)

		mockService.EXPECT().Delete(gomock.Any(), int64(5)).Return(failure.NotFound("Booking not found"))

		res := serve(router, http.MethodDelete, "/bookings/5", "")

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.JSONEq(t, `{"error":"Booking not found"}`, res.Body.String())
	})
}
