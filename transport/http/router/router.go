package router

import (
	"atithi/internal/handlers/booking"
	"atithi/internal/handlers/garden"
	"atithi/internal/handlers/pricing"
	"atithi/internal/handlers/room"
	"atithi/internal/handlers/rule"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room    room.Handler
	Garden  garden.Handler
	Booking booking.Handler
	Pricing pricing.Handler
	Rule    rule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Garden.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Rule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
