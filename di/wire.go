//go:build wireinject
// +build wireinject

package di

import (
	"hotie/config"
	"hotie/infras/kafka"
	"hotie/infras/otel"
	"hotie/infras/postgres"
	"hotie/shared/cache"
	"hotie/transport/http"
	"hotie/transport/http/middleware"
	"hotie/transport/http/router"

	bookingRepository "hotie/internal/domains/booking/repository"
	bookingService "hotie/internal/domains/booking/service"
	guestRepository "hotie/internal/domains/guest/repository"
	guestService "hotie/internal/domains/guest/service"
	housekeepingRepository "hotie/internal/domains/housekeeping/repository"
	housekeepingService "hotie/internal/domains/housekeeping/service"
	paymentRepository "hotie/internal/domains/payment/repository"
	paymentService "hotie/internal/domains/payment/service"
	"hotie/internal/domains/room/lifecycle"
	roomRepository "hotie/internal/domains/room/repository"
	roomService "hotie/internal/domains/room/service"

	bookingHandler "hotie/internal/handlers/booking"
	guestHandler "hotie/internal/handlers/guest"
	housekeepingHandler "hotie/internal/handlers/housekeeping"
	paymentHandler "hotie/internal/handlers/payment"
	roomHandler "hotie/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	ProvideCache,
	cache.NewInvalidator,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	lifecycle.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var housekeepingDomain = wire.NewSet(
	housekeepingRepository.New,
	housekeepingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	guestDomain,
	paymentDomain,
	housekeepingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	guestHandler.New,
	paymentHandler.New,
	housekeepingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
