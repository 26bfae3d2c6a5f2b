package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions configures the API router.
type RouterOptions struct {
	CORSOrigin string
	LogLevel   slog.Level
}

// NewRouter wires the payroll and feedback handlers under /api/v1 with
// structured request logging.
func NewRouter(payrollHandler *PayrollHandler, feedbackHandler *FeedbackHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "myinhand"),
	)

	if opts.CORSOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{opts.CORSOrigin},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/payroll", func(r chi.Router) {
			r.Post("/calculate", payrollHandler.Calculate)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Post("/", feedbackHandler.Submit)
			r.Get("/", feedbackHandler.List)
		})

		r.Route("/likes", func(r chi.Router) {
			r.Get("/", feedbackHandler.Likes)
			r.Post("/", feedbackHandler.Like)
		})
	})

	return r
}
