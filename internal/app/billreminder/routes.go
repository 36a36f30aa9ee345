// Package billreminder предоставляет маршруты для основного приложения.
package billreminder

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/bill-reminder/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/bill-reminder/internal/http/handlers/auth/register"
	billcreate "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/create"
	billlist "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/list"
	billpay "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/pay"
	billread "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/read"
	billremove "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/remove"
	billupdate "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/update"
	billupcoming "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/bill/upcoming"
	"github.com/magabrotheeeer/bill-reminder/internal/http/handlers/dashboard"
	"github.com/magabrotheeeer/bill-reminder/internal/http/handlers/health"
	notificationget "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/notification/get"
	notificationtest "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/notification/test"
	notificationupdate "github.com/magabrotheeeer/bill-reminder/internal/http/handlers/notification/update"
	"github.com/magabrotheeeer/bill-reminder/internal/http/middlewarectx"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/bill-reminder/internal/services/auth"
	billservice "github.com/magabrotheeeer/bill-reminder/internal/services/bill"
	notificationservice "github.com/magabrotheeeer/bill-reminder/internal/services/notification"
	"github.com/magabrotheeeer/bill-reminder/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.AuthService, billService *billservice.BillService,
	notificationService *notificationservice.NotificationService,
	db *repository.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/bills", billcreate.New(logger, billService).ServeHTTP)
			r.Get("/bills", billlist.New(logger, billService).ServeHTTP)
			r.Get("/bills/upcoming", billupcoming.New(logger, billService).ServeHTTP)
			r.Get("/bills/{id}", billread.New(logger, billService).ServeHTTP)
			r.Put("/bills/{id}", billupdate.New(logger, billService).ServeHTTP)
			r.Delete("/bills/{id}", billremove.New(logger, billService).ServeHTTP)
			r.Put("/bills/{id}/pay", billpay.New(logger, billService).ServeHTTP)
			r.Get("/dashboard", dashboard.New(logger, billService).ServeHTTP)
			r.Get("/notifications", notificationget.New(logger, authService).ServeHTTP)
			r.Put("/notifications", notificationupdate.New(logger, authService).ServeHTTP)
			r.Post("/notifications/test", notificationtest.New(logger, notificationService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
