package router

import (
	"lodge/internal/handlers/auth"
	"lodge/internal/handlers/availability"
	"lodge/internal/handlers/rateplan"
	"lodge/internal/handlers/rates"
	"lodge/internal/handlers/reservation"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/roomtype"
	"lodge/internal/handlers/user"
	"lodge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	RoomType     roomtype.Handler
	Room         room.Handler
	RatePlan     rateplan.Handler
	Rates        rates.Handler
	Availability availability.Handler
	Reservation  reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			r.DomainHandlers.Auth.Router(public)
			r.DomainHandlers.Rates.Router(public)
			r.DomainHandlers.Availability.Router(public)
		})

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.AuthMiddleware.APIKey)
			protected.Use(r.AuthMiddleware.Auth)
			protected.Use(r.AuthMiddleware.RBAC)

			r.DomainHandlers.Auth.ProtectedRouter(protected)
			r.DomainHandlers.User.Router(protected)
			r.DomainHandlers.RoomType.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.RatePlan.Router(protected)
			r.DomainHandlers.Reservation.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
