package router

import (
	"net/http"

	_ "lost-found-pets/docs"
	"lost-found-pets/internal/middleware"
	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/shell"
	"lost-found-pets/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Store de la sesión. nil = los handlers que lo usan responden 500.
	Store *store.Store

	Logger logger.Logger

	// PhotoLimit en bytes para POST /photos; 0 = default.
	PhotoLimit int64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.Session(opts.Store))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	shell.RegisterRoutes(r, shell.Options{
		Logger:     log,
		PhotoLimit: opts.PhotoLimit,
	})

	return r
}
