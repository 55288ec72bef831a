//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	"github.com/google/wire"

	availabilityService "lodge/internal/domains/availability/service"
	authService "lodge/internal/domains/auth/service"
	rateplanRepository "lodge/internal/domains/rateplan/repository"
	rateplanService "lodge/internal/domains/rateplan/service"
	ratesService "lodge/internal/domains/rates/service"
	reservationRepository "lodge/internal/domains/reservation/repository"
	reservationService "lodge/internal/domains/reservation/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	roomtypeRepository "lodge/internal/domains/roomtype/repository"
	roomtypeService "lodge/internal/domains/roomtype/service"
	userRepository "lodge/internal/domains/user/repository"
	userService "lodge/internal/domains/user/service"

	authHandler "lodge/internal/handlers/auth"
	availabilityHandler "lodge/internal/handlers/availability"
	rateplanHandler "lodge/internal/handlers/rateplan"
	ratesHandler "lodge/internal/handlers/rates"
	reservationHandler "lodge/internal/handlers/reservation"
	roomHandler "lodge/internal/handlers/room"
	roomtypeHandler "lodge/internal/handlers/roomtype"
	userHandler "lodge/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomtypeDomain = wire.NewSet(
	roomtypeRepository.New,
	roomtypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var rateplanDomain = wire.NewSet(
	rateplanRepository.New,
	rateplanRepository.NewPrice,
	rateplanRepository.NewRestriction,
	rateplanService.New,
)

var ratesDomain = wire.NewSet(
	ratesService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	roomtypeDomain,
	roomDomain,
	rateplanDomain,
	ratesDomain,
	availabilityDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomtypeHandler.New,
	roomHandler.New,
	rateplanHandler.New,
	ratesHandler.New,
	availabilityHandler.New,
	reservationHandler.New,
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
