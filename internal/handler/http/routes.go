package http

import (
	"net/http"

	"github.com/MKhiriev/go-health-keeper/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(metrics.InstrumentHandler)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/healthz", h.healthz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if h.cfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}
		r.Use(h.auth)
		r.Use(h.withRateLimit)
		r.Use(h.withProfile)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", scoped(h.getProfile))
			r.Patch("/", scoped(h.updateProfile))
			r.Post("/refresh", h.refreshProfile)
			r.Delete("/session", h.resetProfile)
			r.Get("/bmr", h.calculateBMR)
		})

		r.Route("/daily", func(r chi.Router) {
			r.Get("/", scoped(h.listDailyRange))
			r.Get("/today", scoped(h.getToday))
			r.Route("/{date}", func(r chi.Router) {
				r.Get("/", scoped(h.getDay))
				r.Patch("/", scoped(h.upsertDailyEntry))
				r.Get("/summary", scoped(h.getDaySummary))

				r.Get("/calories", scoped(h.listCalories))
				r.Post("/calories", scoped(h.addCalorie))
				r.Delete("/calories/{id}", scoped(h.deleteCalorie))

				r.Get("/exercises", scoped(h.listExercises))
				r.Post("/exercises", scoped(h.addExercise))
				r.Delete("/exercises/{id}", scoped(h.deleteExercise))

				r.Get("/mits", scoped(h.listMITs))
				r.Post("/mits", scoped(h.addMIT))
				r.Post("/mits/{id}/toggle", scoped(h.toggleMIT))
				r.Delete("/mits/{id}", scoped(h.deleteMIT))

				r.Get("/nirvana", scoped(h.listNirvanaSessions))
				r.Post("/nirvana", scoped(h.addNirvanaSession))
				r.Delete("/nirvana/{id}", scoped(h.deleteNirvanaSession))
			})
		})

		r.Route("/injections", func(r chi.Router) {
			r.Get("/", scoped(h.listInjections))
			r.Post("/", scoped(h.createInjection))
			r.Patch("/{id}", scoped(h.updateInjection))
			r.Delete("/{id}", scoped(h.deleteInjection))
		})

		r.Route("/weekly", func(r chi.Router) {
			r.Get("/current", scoped(h.getCurrentWeek))
			r.Get("/{weekStart}", scoped(h.getWeek))
			r.Put("/{weekStart}", scoped(h.upsertWeek))
			r.Post("/{weekStart}/objectives/{id}/toggle", scoped(h.toggleObjective))
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", scoped(h.listSubscriptions))
			r.Post("/", scoped(h.createSubscription))
			r.Get("/totals", scoped(h.getSubscriptionTotals))
			r.Patch("/{id}", scoped(h.updateSubscription))
			r.Delete("/{id}", scoped(h.deleteSubscription))

			r.Get("/categories", scoped(h.listCategories))
			r.Post("/categories", scoped(h.createCategory))
			r.Put("/categories/{id}", scoped(h.updateCategory))
			r.Delete("/categories/{id}", scoped(h.deleteCategory))
		})

		r.Route("/winners-bible", func(r chi.Router) {
			r.Get("/", scoped(h.listImages))
			r.Post("/", scoped(h.uploadImage))
			r.Put("/order", scoped(h.reorderImages))
			r.Delete("/{id}", scoped(h.deleteImage))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", scoped(h.getSettings))
			r.Patch("/tracker", scoped(h.updateTrackerSettings))
			r.Patch("/macros", scoped(h.updateMacroTargets))
		})

		r.Route("/lookups", func(r chi.Router) {
			r.Get("/compounds", scoped(h.listCompounds))
			r.Post("/compounds", scoped(h.createCompound))
			r.Delete("/compounds/{id}", scoped(h.deleteCompound))

			r.Get("/food-templates", scoped(h.listFoodTemplates))
			r.Post("/food-templates", scoped(h.createFoodTemplate))
			r.Delete("/food-templates/{id}", scoped(h.deleteFoodTemplate))

			r.Get("/nirvana-types", scoped(h.listNirvanaTypes))
			r.Post("/nirvana-types", scoped(h.createNirvanaType))
			r.Delete("/nirvana-types/{id}", scoped(h.deleteNirvanaType))
		})
	})

	return router
}
