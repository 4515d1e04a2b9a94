//go:build wireinject
// +build wireinject

package di

import (
	"atithi/config"
	"atithi/infras/jwt"
	"atithi/infras/kafka"
	"atithi/infras/otel"
	"atithi/infras/postgres"
	"atithi/infras/redis"
	"atithi/internal/events"
	"atithi/permissions"
	"atithi/shared/cache"
	"atithi/transport/http"
	"atithi/transport/http/middleware"
	"atithi/transport/http/router"

	bookingRepository "atithi/internal/domains/booking/repository"
	bookingService "atithi/internal/domains/booking/service"
	gardenRepository "atithi/internal/domains/garden/repository"
	gardenService "atithi/internal/domains/garden/service"
	pricingService "atithi/internal/domains/pricing/service"
	roomRepository "atithi/internal/domains/room/repository"
	roomService "atithi/internal/domains/room/service"
	ruleRepository "atithi/internal/domains/rule/repository"
	ruleService "atithi/internal/domains/rule/service"

	bookingHandler "atithi/internal/handlers/booking"
	gardenHandler "atithi/internal/handlers/garden"
	pricingHandler "atithi/internal/handlers/pricing"
	roomHandler "atithi/internal/handlers/room"
	ruleHandler "atithi/internal/handlers/rule"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var gardenDomain = wire.NewSet(
	gardenRepository.New,
	gardenService.New,
)

var ruleDomain = wire.NewSet(
	ruleRepository.New,
	ruleService.New,
)

var pricingDomain = wire.NewSet(
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	events.NewPublisher,
)

var domains = wire.NewSet(
	roomDomain,
	gardenDomain,
	ruleDomain,
	pricingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	gardenHandler.New,
	bookingHandler.New,
	pricingHandler.New,
	ruleHandler.New,
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
