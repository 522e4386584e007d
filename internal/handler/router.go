package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	custommiddleware "github.com/mmeshcher/accountbot/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware панели.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(custommiddleware.Logger(h.logger))
	r.Use(chimw.Recoverer)
	if h.metrics != nil {
		r.Use(custommiddleware.Metrics(h.metrics))
	}
	r.Use(custommiddleware.GzipMiddleware)

	r.Get("/healthz", h.Health)
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/login", h.Login)
		r.Get("/catalog", h.Catalog)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware.Middleware)

			r.Post("/user/logout", h.Logout)
			r.Get("/user", h.CurrentUser)

			r.Get("/accounts", h.ListAccounts)
			r.Post("/accounts/generate", h.GenerateAccounts)
			r.Post("/accounts/{id}/pause", h.PauseAccount)
			r.Post("/accounts/{id}/resume", h.ResumeAccount)
			r.Post("/accounts/{id}/toggle", h.ToggleAccount)
			r.Post("/accounts/{id}/revoke", h.RevokeAccount)

			r.Get("/notification", h.Notification)

			r.Get("/dashboard", h.Dashboard)
			r.Post("/dashboard/history/more", h.LoadMoreHistory)

			r.Get("/support/messages", h.SupportMessages)
			r.Post("/support/messages", h.SendSupportMessage)

			r.Get("/billing", h.Billing)
			r.Post("/billing/purchase", h.Purchase)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
