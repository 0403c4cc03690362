package router

import (
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/appointment"
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/article"
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/auth"
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/course"
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/enrollment"
	"github.com/antoniomp17/WebPsicolog-a/internal/handlers/user"
	"github.com/antoniomp17/WebPsicolog-a/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Appointment appointment.Handler
	Course      course.Handler
	Article     article.Handler
	Enrollment  enrollment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	authRole       middleware.AuthRole
}

// SetupRoutes mounts the public API under /api and the admin surface
// under /api/admin. Appointment booking runs behind OptionalAuth so
// guests can book while logged-in users get their booking linked.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Course.Router(routerGroup)
		r.DomainHandlers.Article.Router(routerGroup)

		routerGroup.Group(func(optional chi.Router) {
			optional.Use(r.authRole.OptionalAuth)

			r.DomainHandlers.Appointment.Router(optional)
		})

		routerGroup.Group(func(private chi.Router) {
			private.Use(r.authRole.Auth)

			r.DomainHandlers.Auth.PrivateRouter(private)
			r.DomainHandlers.Enrollment.Router(private)
		})

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Use(r.authRole.Auth)
			admin.Use(r.authRole.RBAC)

			r.DomainHandlers.User.Router(admin)
			r.DomainHandlers.Appointment.AdminRouter(admin)
			r.DomainHandlers.Course.AdminRouter(admin)
			r.DomainHandlers.Article.AdminRouter(admin)
			r.DomainHandlers.Enrollment.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		authRole:       authRole,
	}
}
