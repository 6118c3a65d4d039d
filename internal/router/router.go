package router

import (
	"net/http"
	"time"

	middleware2 "task-manager-service/pkg/middleware"

	"task-manager-service/internal/handler"
	"task-manager-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	paymentHandler *handler.PaymentHandler,
	taskHandler *handler.TaskHandler,
	teamHandler *handler.TeamHandler,
	analyticsHandler *handler.AnalyticsHandler,
	healthHandler *handler.HealthHandler,
	authService middleware.AuthService,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	// Generous enough for the simulated payment delay.
	r.Use(chimiddleware.Timeout(10 * time.Second))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Public endpoints
	r.Head("/health", healthHandler.Health)
	r.Post("/auth/login", authHandler.Login)

	// Protected endpoints (require a valid session)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))

		r.Post("/auth/logout", authHandler.Logout)

		// Payment endpoints
		r.Post("/payment/subscribe", paymentHandler.Subscribe)
		r.Get("/payment/status", paymentHandler.Status)

		// Task endpoints
		r.Post("/task/create", taskHandler.Create)
		r.Post("/task/toggle", taskHandler.Toggle)
		r.Post("/task/delete", taskHandler.Delete)
		r.Post("/task/comment", taskHandler.AddComment)
		r.Get("/task/list", taskHandler.List)

		// Team endpoints
		r.Post("/team/add", teamHandler.CreateTeam)
		r.Get("/team/get", teamHandler.GetTeam)
		r.Get("/team/list", teamHandler.ListTeams)
		r.Post("/project/create", teamHandler.CreateProject)

		// Analytics endpoints
		r.Get("/analytics", analyticsHandler.Summary)
		r.Get("/analytics/export", analyticsHandler.Export)
	})

	return r
}
