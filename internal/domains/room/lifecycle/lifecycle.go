package lifecycle

//go:generate go run go.uber.org/mock/mockgen -source=./lifecycle.go -destination=../mocks/lifecycle_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/config"
	"hotie/infras/kafka"
	"hotie/infras/otel"
	"hotie/internal/domains/room/model"
	"hotie/internal/domains/room/repository"
	"hotie/shared"
	"hotie/shared/constant"
	"hotie/shared/failure"
	"hotie/shared/timezone"
	"strconv"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Event is a booking occurrence that moves a room between states.
type Event string

const (
	EventBookingCreated    Event = "booking.created"
	EventBookingCheckedIn  Event = "booking.checked_in"
	EventBookingCheckedOut Event = "booking.checked_out"
	EventBookingDeleted    Event = "booking.deleted"
)

// Booking statuses that drive a room transition when set on update.
const (
	BookingStatusCheckedIn  = "Checked-In"
	BookingStatusCheckedOut = "Checked-Out"
)

type edge struct {
	from string
	to   string
}

// edges holds the room state machine. An empty from accepts any current state.
var edges = map[Event]edge{
	EventBookingCreated:    {from: model.StatusAvailable, to: model.StatusBooked},
	EventBookingCheckedIn:  {to: model.StatusOccupied},
	EventBookingCheckedOut: {to: model.StatusCleaning},
	EventBookingDeleted:    {to: model.StatusAvailable},
}

// Target returns the status a room ends in after event.
func Target(event Event) (string, bool) {
	e, ok := edges[event]

	return e.to, ok
}

// Guarded reports whether event only applies to a room in a specific state.
func Guarded(event Event) bool {
	return edges[event].from != ""
}

// EventForBookingStatus maps a booking status written by an update to the
// room event it triggers.
func EventForBookingStatus(status string) (Event, bool) {
	switch status {
	case BookingStatusCheckedIn:
		return EventBookingCheckedIn, true
	case BookingStatusCheckedOut:
		return EventBookingCheckedOut, true
	default:
		return "", false
	}
}

// Transition records a status change applied to a room.
type Transition struct {
	RoomID int64     `json:"room_id"`
	Event  Event     `json:"event"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// Manager owns every room status write.
type Manager interface {
	// Apply moves the room inside sqltx. A guarded edge is a compare-and-set:
	// when the room is not in the expected state nothing changes and the
	// booking is rejected.
	Apply(ctx context.Context, sqltx *sqlx.Tx, roomID int64, event Event) (Transition, error)
	// Publish announces committed transitions. It never fails the caller.
	Publish(ctx context.Context, transitions ...Transition)
	// Wait blocks until every publish started so far has returned. Call it
	// before closing the Kafka client.
	Wait()
}

type managerImpl struct {
	repo     repository.Room
	kafka    kafka.Client
	otel     otel.Otel
	topic    string
	inflight sync.WaitGroup
}

func New(repo repository.Room, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Manager {
	return &managerImpl{
		repo:  repo,
		kafka: kafkaClient,
		topic: cfg.Kafka.Topics.RoomStatus,
		otel:  otel,
	}
}

func (m *managerImpl) Apply(ctx context.Context, sqltx *sqlx.Tx, roomID int64, event Event) (res Transition, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Apply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	e, ok := edges[event]
	if !ok {
		return res, fmt.Errorf("unknown room event %q", event)
	}

	scope.SetAttributes(map[string]any{"room.id": strconv.FormatInt(roomID, 10), "room.event": string(event)})

	filter := shared.FilterByID(roomID, model.FieldID, model.TableName)
	if e.from != "" {
		filter = shared.FilterByIDAndField(roomID, model.FieldID, model.FieldStatus, e.from, model.TableName)
	}

	room, err := m.repo.UpdateTx(ctx, sqltx, map[string]any{model.FieldStatus: e.to}, filter)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Str("event", string(event)).Msg("failed to apply room transition")

		return res, fmt.Errorf("failed to apply room transition: %w", err)
	}

	if room.ID == 0 {
		if e.from != "" {
			return res, failure.RoomNotAvailable
		}

		return res, failure.NotFound("Room not found") // nolint:wrapcheck
	}

	log.Debug().Int64("room_id", roomID).Str("event", string(event)).Str("status", e.to).Msg("room transition applied")

	return Transition{RoomID: roomID, Event: event, Status: e.to, At: timezone.Now()}, nil
}

func (m *managerImpl) Publish(ctx context.Context, transitions ...Transition) {
	if len(transitions) == 0 {
		return
	}

	messages := make([]kafka.Message, 0, len(transitions))
	for _, t := range transitions {
		messages = append(messages, kafka.Message{Key: strconv.FormatInt(t.RoomID, 10), Value: t})
	}

	m.inflight.Add(1)

	go func() {
		defer m.inflight.Done()

		c := context.WithoutCancel(ctx)

		if err := m.kafka.SendMessages(c, m.topic, messages...); err != nil {
			log.Error().Err(err).Str("topic", m.topic).Msg("failed to publish room transitions")
		}
	}()
}

func (m *managerImpl) Wait() {
	m.inflight.Wait()
}
