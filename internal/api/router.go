package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api/handlers"
	custommiddleware "github.com/rkaranam/Savings-Planner-Backend/internal/api/middleware"
	"github.com/rkaranam/Savings-Planner-Backend/internal/config"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router.
// Deletion of goals and contributions is unsupported; no DELETE routes exist.
func NewRouter(
	systemService *service.SystemService,
	goalService *service.GoalService,
	rateService *service.RateService,
	dashboardService *service.DashboardService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/goal", func(r chi.Router) {
			goalHandler := handlers.NewGoalHandler(goalService)
			contributionHandler := handlers.NewContributionHandler(goalService)

			r.Get("/", goalHandler.Goals)
			r.Post("/", goalHandler.CreateGoal)

			r.Route("/{goalId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateGoalID)
				r.Get("/", goalHandler.Goal)
				r.Get("/contribution", contributionHandler.Contributions)
				r.Post("/contribution", contributionHandler.AddContribution)
			})
		})

		r.Route("/rates", func(r chi.Router) {
			rateHandler := handlers.NewRateHandler(rateService)
			r.Get("/latest", rateHandler.Latest)
			r.Post("/refresh", rateHandler.Refresh)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(dashboardService)
			r.Get("/summary", dashboardHandler.Summary)
		})
	})

	return r
}
