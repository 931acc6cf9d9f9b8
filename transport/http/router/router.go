package router

import (
	"hotie/internal/handlers/booking"
	"hotie/internal/handlers/guest"
	"hotie/internal/handlers/housekeeping"
	"hotie/internal/handlers/payment"
	"hotie/internal/handlers/room"
	"hotie/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type DomainHandlers struct {
	Room         room.Handler
	Booking      booking.Handler
	Guest        guest.Handler
	Payment      payment.Handler
	Housekeeping housekeeping.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		routerGroup.Use(
			r.App.RequestID,
			chiMiddleware.Recoverer,
			r.App.Tracing,
			r.App.RateLimit(),
		)

		r.DomainHandlers.Room.Router(routerGroup, r.Auth.APIKey)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
	}
}
