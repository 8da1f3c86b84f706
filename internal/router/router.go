package router

import (
	"net/http"
	"time"

	middleware2 "github.com/vamshikrishnam1/task-performance/pkg/middleware"

	"github.com/vamshikrishnam1/task-performance/internal/handler"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func SetupRouter(
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware2.LoggingMiddleware)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	r.Head("/health", healthHandler.Health)

	r.Route("/api/reports", func(r chi.Router) {
		r.Get("/", reportHandler.ListReports)
		r.Post("/", reportHandler.CreateReport)
		r.Post("/preview", reportHandler.PreviewMetrics)
		r.Get("/{id}", reportHandler.GetReport)
		r.Get("/{id}/summary", reportHandler.GetReportSummary)
		r.Delete("/{id}", reportHandler.DeleteReport)
	})

	return r
}
