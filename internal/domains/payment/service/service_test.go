package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotie/config"
	otelMocks "hotie/infras/otel/mocks"
	paymentMocks "hotie/internal/domains/payment/mocks"
	"hotie/internal/domains/payment/model"
	"hotie/internal/domains/payment/model/dto"
	"hotie/internal/domains/payment/service"
	"hotie/shared/cache"
	cacheMocks "hotie/shared/cache/mocks"
	"hotie/shared/failure"
)

func newService(t *testing.T) (service.Payment, *paymentMocks.MockPayment, *cacheMocks.MockCache) {
	ctrl := gomock.NewController(t)

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, cache.NewInvalidator(mockCache), otelMocks.NewOtel()), mockRepo, mockCache
}

func TestPaymentService_GetAll(t *testing.T) {
	t.Run("hit skips the store", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "all_payments", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]dto.PaymentResponse) = []dto.PaymentResponse{{ID: 7, Amount: 120}}

				return nil
			})

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, int64(7), res[0].ID)
	})

	t.Run("miss reads joined rows", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)
		guest, room := "Ada", "101"

		mockCache.EXPECT().Get(gomock.Any(), "all_payments", gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Payment{{ID: 1, BookingID: 4, Amount: 99.5, Method: "card", GuestName: &guest, RoomNumber: &room}}, nil)
		mockCache.EXPECT().Save(gomock.Any(), "all_payments", gomock.Len(1), 300).Return(nil)

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "Ada", *res[0].GuestName)
		assert.Equal(t, "101", *res[0].RoomNumber)
	})
}

func TestPaymentService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "payment_9", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)

	_, err := svc.Get(context.Background(), 9)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Payment not found", err.Error())
}

func TestPaymentService_Create(t *testing.T) {
	bookingID, amount := int64(4), 250.0
	paidAt := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("created", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), model.Payment{BookingID: 4, Amount: 250, Method: "cash"}).
			Return(model.Payment{ID: 2, BookingID: 4, Amount: 250, Method: "cash", PaidAt: paidAt}, nil)
		mockCache.EXPECT().Delete(gomock.Any(), "all_payments", "payment_2").Return(nil)

		res, err := svc.Create(context.Background(), dto.CreatePaymentRequest{BookingID: &bookingID, Amount: &amount, Method: "cash"})

		require.NoError(t, err)
		assert.Equal(t, int64(2), res.ID)
		assert.Equal(t, paidAt, res.PaidAt)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(model.Payment{}, failure.BadRequestFromString(`Key (booking_id)=(4) is not present in table "bookings".`))

		_, err := svc.Create(context.Background(), dto.CreatePaymentRequest{BookingID: &bookingID, Amount: &amount, Method: "cash"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestPaymentService_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)
		method := "transfer"

		mockRepo.EXPECT().
			Update(gomock.Any(), map[string]any{"method": method}, gomock.Any()).
			Return(model.Payment{ID: 2, Amount: 250, Method: method}, nil)
		mockCache.EXPECT().Delete(gomock.Any(), "all_payments", "payment_2").Return(nil)

		res, err := svc.Update(context.Background(), dto.UpdatePaymentRequest{Method: &method}, 2)

		require.NoError(t, err)
		assert.Equal(t, method, res.Method)
		assert.Equal(t, 250.0, res.Amount)
	})

	t.Run("empty update returns current row", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{ID: 2, Method: "cash"}, nil)

		res, err := svc.Update(context.Background(), dto.UpdatePaymentRequest{}, 2)

		require.NoError(t, err)
		assert.Equal(t, "cash", res.Method)
	})

	t.Run("missing", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)
		amount := 10.0

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdatePaymentRequest{Amount: &amount}, 2)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPaymentService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(model.Payment{ID: 2}, nil)
		mockCache.EXPECT().Delete(gomock.Any(), "all_payments", "payment_2").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 2))
	})

	t.Run("store failure", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(model.Payment{}, errors.New("connection reset"))

		err := svc.Delete(context.Background(), 2)

		assert.True(t, failure.IsInternal(err))
	})
}
