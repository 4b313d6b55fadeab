package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/finchat/internal/http/auth"
	"github.com/MrJamesThe3rd/finchat/internal/http/export"
	"github.com/MrJamesThe3rd/finchat/internal/http/message"
	"github.com/MrJamesThe3rd/finchat/internal/http/report"
	"github.com/MrJamesThe3rd/finchat/internal/http/statement"
)

type Handlers struct {
	Messages  *message.Handler
	Statement *statement.Handler
	Export    *export.Handler
	Report    *report.Handler
}

type Options struct {
	// JWTSecret signs gateway tokens. Empty disables authentication.
	JWTSecret      []byte
	AllowedOrigins []string
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		r.Route("/messages", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Messages.Routes(r)
		})

		r.Route("/import", h.Statement.Routes)

		r.Route("/export", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Export.Routes(r)
		})

		r.Route("/reports", h.Report.Routes)
	})

	return router
}
