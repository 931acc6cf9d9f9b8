package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/internal/domains/booking/model"
	paymentModel "hotie/internal/domains/payment/model"
	"hotie/shared/constant"
	gDto "hotie/shared/dto"
	"hotie/shared/logger"
	gRepo "hotie/shared/repository"

	"github.com/jmoiron/sqlx"
)

// Booking writes only run inside a transaction shared with the room lifecycle.
type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (model.Booking, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	// DeletePaymentsTx removes the payments recorded against a booking and
	// returns their ids.
	DeletePaymentsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID int64) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

var deletePaymentsQuery = fmt.Sprintf(
	"DELETE FROM %s WHERE %s = $1 RETURNING %s",
	paymentModel.TableName, paymentModel.FieldBookingID, paymentModel.FieldID,
)

func (r *repositoryImpl) DeletePaymentsTx(ctx context.Context, sqltx *sqlx.Tx, bookingID int64) ([]int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.DeletePaymentsTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, deletePaymentsQuery)

	ids := []int64{}

	if err := sqltx.SelectContext(ctx, &ids, deletePaymentsQuery, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to delete payments of booking %d: %w", bookingID, err)
	}

	return ids, nil
}
