//go:build wireinject
// +build wireinject

package di

import (
	"github.com/antoniomp17/WebPsicolog-a/config"
	"github.com/antoniomp17/WebPsicolog-a/infras/jwt"
	"github.com/antoniomp17/WebPsicolog-a/infras/kafka"
	"github.com/antoniomp17/WebPsicolog-a/infras/otel"
	"github.com/antoniomp17/WebPsicolog-a/infras/payment"
	"github.com/antoniomp17/WebPsicolog-a/infras/postgres"
	"github.com/antoniomp17/WebPsicolog-a/infras/redis"
	"github.com/antoniomp17/WebPsicolog-a/infras/s3"
	"github.com/antoniomp17/WebPsicolog-a/infras/smtp"
	"github.com/antoniomp17/WebPsicolog-a/internal/notification"
	"github.com/antoniomp17/WebPsicolog-a/permissions"
	"github.com/antoniomp17/WebPsicolog-a/shared/cache"
	"github.com/antoniomp17/WebPsicolog-a/transport/http"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/middleware"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/router"

	"github.com/google/wire"

	appointmentRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/appointment/repository"
	appointmentService "github.com/antoniomp17/WebPsicolog-a/internal/domains/appointment/service"
	articleRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/article/repository"
	articleService "github.com/antoniomp17/WebPsicolog-a/internal/domains/article/service"
	authService "github.com/antoniomp17/WebPsicolog-a/internal/domains/auth/service"
	courseRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/repository"
	courseService "github.com/antoniomp17/WebPsicolog-a/internal/domains/course/service"
	enrollmentRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/repository"
	enrollmentService "github.com/antoniomp17/WebPsicolog-a/internal/domains/enrollment/service"
	userRepository "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/repository"
	userService "github.com/antoniomp17/WebPsicolog-a/internal/domains/user/service"

	appointmentHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/appointment"
	articleHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/article"
	authHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/auth"
	courseHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/course"
	enrollmentHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/enrollment"
	userHandler "github.com/antoniomp17/WebPsicolog-a/internal/handlers/user"
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
	s3.New,
	smtp.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var events = wire.NewSet(
	notification.NewPublisher,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var courseDomain = wire.NewSet(
	courseRepository.New,
	courseService.New,
)

var articleDomain = wire.NewSet(
	articleRepository.New,
	articleService.New,
)

var enrollmentDomain = wire.NewSet(
	enrollmentRepository.New,
	enrollmentService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	appointmentDomain,
	courseDomain,
	articleDomain,
	enrollmentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	appointmentHandler.New,
	courseHandler.New,
	articleHandler.New,
	enrollmentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		events,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *notification.Consumer {
	wire.Build(
		configurations,
		wire.NewSet(
			otel.New,
			kafka.New,
			smtp.New,
		),
		notification.NewConsumer,
	)

	return &notification.Consumer{}
}
