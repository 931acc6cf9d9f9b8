package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotie/config"
	otelMocks "hotie/infras/otel/mocks"
	housekeepingMocks "hotie/internal/domains/housekeeping/mocks"
	"hotie/internal/domains/housekeeping/model"
	"hotie/internal/domains/housekeeping/model/dto"
	"hotie/internal/domains/housekeeping/service"
	"hotie/shared/cache"
	cacheMocks "hotie/shared/cache/mocks"
	gDto "hotie/shared/dto"
	"hotie/shared/failure"
)

func newService(t *testing.T) (service.Housekeeping, *housekeepingMocks.MockHousekeeping, *cacheMocks.MockCache) {
	ctrl := gomock.NewController(t)

	mockRepo := housekeepingMocks.NewMockHousekeeping(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return service.New(mockRepo, cfg, mockCache, cache.NewInvalidator(mockCache), otelMocks.NewOtel()), mockRepo, mockCache
}

func TestHousekeepingService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)
	room, staff := "101", "Maria"

	mockCache.EXPECT().Get(gomock.Any(), "all_housekeeping", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Task, error) {
			assert.Equal(t, "housekeeping.date", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Task{{ID: 1, RoomID: 3, StaffID: 2, Status: "Dirty", RoomNumber: &room, StaffName: &staff}}, nil
		})
	mockCache.EXPECT().Save(gomock.Any(), "all_housekeeping", gomock.Len(1), 300).Return(nil)

	res, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Maria", *res[0].StaffName)
}

func TestHousekeepingService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "housekeeping_5", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)

	_, err := svc.Get(context.Background(), 5)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "Housekeeping record not found", err.Error())
}

func TestHousekeepingService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)
	roomID, staffID := int64(3), int64(2)

	mockRepo.EXPECT().
		Insert(gomock.Any(), model.Task{RoomID: 3, StaffID: 2, Status: "Dirty"}).
		Return(model.Task{ID: 8, RoomID: 3, StaffID: 2, Status: "Dirty"}, nil)
	mockCache.EXPECT().Delete(gomock.Any(), "all_housekeeping", "housekeeping_8").Return(nil)

	res, err := svc.Create(context.Background(), dto.CreateTaskRequest{RoomID: &roomID, StaffID: &staffID, Status: "Dirty"})

	require.NoError(t, err)
	assert.Equal(t, int64(8), res.ID)
}

func TestHousekeepingService_Update(t *testing.T) {
	t.Run("status change restamps the date", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)
		status := "Clean"
		before := time.Now().Add(-time.Minute)

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) (model.Task, error) {
				assert.Equal(t, status, req["status"])

				date, ok := req["date"].(time.Time)
				require.True(t, ok)
				assert.True(t, date.After(before))
				assert.NotContains(t, req, "room_id")

				return model.Task{ID: 8, Status: status, Date: date}, nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), "all_housekeeping", "housekeeping_8").Return(nil)

		res, err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: &status}, 8)

		require.NoError(t, err)
		assert.Equal(t, status, res.Status)
	})

	t.Run("missing", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)
		status := "Clean"

		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Task{}, nil)

		_, err := svc.Update(context.Background(), dto.UpdateTaskRequest{Status: &status}, 8)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHousekeepingService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(model.Task{ID: 8}, nil)
		mockCache.EXPECT().Delete(gomock.Any(), "all_housekeeping", "housekeeping_8").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), 8))
	})

	t.Run("missing", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(model.Task{}, nil)

		err := svc.Delete(context.Background(), 8)

		assert.Equal(t, "Housekeeping record not found", err.Error())
	})
}
