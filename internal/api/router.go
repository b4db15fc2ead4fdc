package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"work-scheduler-service/internal/api/handlers"
	"work-scheduler-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScheduleRepository, clk ports.Clock) http.Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())

	centerHandler := &handlers.WorkCenterHandler{Repo: repo}
	orderHandler := &handlers.WorkOrderHandler{Repo: repo, Validate: validate}
	scheduleHandler := &handlers.ScheduleHandler{Repo: repo, Clock: clk}

	r := chi.NewRouter()
	r.Use(requestLogger)

	r.Get("/health", handlers.Health)
	r.Get("/work-centers", centerHandler.List)

	r.Route("/work-orders", func(r chi.Router) {
		r.Get("/", orderHandler.List)
		r.Post("/", orderHandler.Create)
		r.Put("/{id}", orderHandler.Update)
		r.Delete("/{id}", orderHandler.Delete)
	})

	r.Route("/schedule", func(r chi.Router) {
		r.Get("/timeline", scheduleHandler.Timeline)
		r.Get("/layout", scheduleHandler.Layout)
		r.Get("/locate", scheduleHandler.Locate)
	})

	return r
}
