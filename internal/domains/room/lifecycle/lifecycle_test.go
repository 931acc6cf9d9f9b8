package lifecycle_test

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
	"hotie/infras/kafka"
	kafkaMocks "hotie/infras/kafka/mocks"
	otelMocks "hotie/infras/otel/mocks"
	"hotie/internal/domains/room/lifecycle"
	roomMocks "hotie/internal/domains/room/mocks"
	"hotie/internal/domains/room/model"
	"hotie/shared"
	"hotie/shared/failure"
)

func newManager(t *testing.T) (lifecycle.Manager, *roomMocks.MockRoom, *kafkaMocks.MockClient) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.RoomStatus = "room-status"

	return lifecycle.New(mockRepo, mockKafka, cfg, otelMocks.NewOtel()), mockRepo, mockKafka
}

func TestEventForBookingStatus(t *testing.T) {
	tests := []struct {
		status string
		want   lifecycle.Event
		ok     bool
	}{
		{status: "Checked-In", want: lifecycle.EventBookingCheckedIn, ok: true},
		{status: "Checked-Out", want: lifecycle.EventBookingCheckedOut, ok: true},
		{status: "Reserved"},
		{status: "checked-in"},
		{status: ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got, ok := lifecycle.EventForBookingStatus(tt.status)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargets(t *testing.T) {
	tests := []struct {
		event   lifecycle.Event
		status  string
		guarded bool
	}{
		{event: lifecycle.EventBookingCreated, status: model.StatusBooked, guarded: true},
		{event: lifecycle.EventBookingCheckedIn, status: model.StatusOccupied},
		{event: lifecycle.EventBookingCheckedOut, status: model.StatusCleaning},
		{event: lifecycle.EventBookingDeleted, status: model.StatusAvailable},
	}

	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			status, ok := lifecycle.Target(tt.event)

			require.True(t, ok)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.guarded, lifecycle.Guarded(tt.event))
		})
	}
}

func TestManager_ApplyGuardedEdge(t *testing.T) {
	t.Run("available room is booked", func(t *testing.T) {
		mgr, mockRepo, _ := newManager(t)

		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), nil,
				map[string]any{"status": model.StatusBooked},
				shared.FilterByIDAndField(7, model.FieldID, model.FieldStatus, model.StatusAvailable, model.TableName)).
			Return(model.Room{ID: 7, Status: model.StatusBooked}, nil)

		tr, err := mgr.Apply(context.Background(), nil, 7, lifecycle.EventBookingCreated)

		require.NoError(t, err)
		assert.Equal(t, int64(7), tr.RoomID)
		assert.Equal(t, model.StatusBooked, tr.Status)
	})

	t.Run("room in another state is rejected", func(t *testing.T) {
		mgr, mockRepo, _ := newManager(t)

		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), nil, gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := mgr.Apply(context.Background(), nil, 7, lifecycle.EventBookingCreated)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Room is not available", err.Error())
	})
}

func TestManager_ApplyUnguardedEdges(t *testing.T) {
	for _, event := range []lifecycle.Event{
		lifecycle.EventBookingCheckedIn,
		lifecycle.EventBookingCheckedOut,
		lifecycle.EventBookingDeleted,
	} {
		t.Run(string(event), func(t *testing.T) {
			mgr, mockRepo, _ := newManager(t)
			status, _ := lifecycle.Target(event)

			mockRepo.EXPECT().
				UpdateTx(gomock.Any(), nil,
					map[string]any{"status": status},
					shared.FilterByID(7, model.FieldID, model.TableName)).
				Return(model.Room{ID: 7, Status: status}, nil)

			tr, err := mgr.Apply(context.Background(), nil, 7, event)

			require.NoError(t, err)
			assert.Equal(t, status, tr.Status)
		})
	}
}

func TestManager_ApplyErrors(t *testing.T) {
	t.Run("missing room", func(t *testing.T) {
		mgr, mockRepo, _ := newManager(t)

		mockRepo.EXPECT().UpdateTx(gomock.Any(), nil, gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := mgr.Apply(context.Background(), nil, 7, lifecycle.EventBookingDeleted)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		mgr, mockRepo, _ := newManager(t)

		mockRepo.EXPECT().UpdateTx(gomock.Any(), nil, gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("deadlock detected"))

		_, err := mgr.Apply(context.Background(), nil, 7, lifecycle.EventBookingCheckedIn)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("unknown event", func(t *testing.T) {
		mgr, _, _ := newManager(t)

		_, err := mgr.Apply(context.Background(), nil, 7, lifecycle.Event("booking.lost"))

		assert.Error(t, err)
	})
}

func TestManager_Publish(t *testing.T) {
	mgr, _, mockKafka := newManager(t)

	var sent []kafka.Message

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "room-status", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent = messages

			return errors.New("broker unavailable")
		})

	mgr.Publish(context.Background(),
		lifecycle.Transition{RoomID: 7, Event: lifecycle.EventBookingDeleted, Status: model.StatusAvailable},
		lifecycle.Transition{RoomID: 8, Event: lifecycle.EventBookingCreated, Status: model.StatusBooked},
	)
	mgr.Wait()

	require.Len(t, sent, 2)
	assert.Equal(t, "7", sent[0].Key)
	assert.Equal(t, "8", sent[1].Key)
}

func TestManager_WaitOutlastsCancelledRequest(t *testing.T) {
	mgr, _, mockKafka := newManager(t)
	release := make(chan struct{})
	finished := make(chan struct{})

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "room-status", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...kafka.Message) error {
			<-release
			assert.NoError(t, ctx.Err())

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	mgr.Publish(ctx, lifecycle.Transition{RoomID: 7, Event: lifecycle.EventBookingDeleted, Status: model.StatusAvailable})
	cancel()

	go func() {
		mgr.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		t.Fatal("Wait returned while a publish was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the publish finished")
	}
}

func TestManager_PublishNothing(t *testing.T) {
	mgr, _, _ := newManager(t)

	// No SendMessages expectation: an empty publish must not reach Kafka.
	mgr.Publish(context.Background())
}
