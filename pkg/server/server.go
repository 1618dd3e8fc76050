package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	audithandlers "github.com/idfwu/ccem/pkg/handlers/audit"
	issuehandlers "github.com/idfwu/ccem/pkg/handlers/issues"
	ccemmiddleware "github.com/idfwu/ccem/pkg/server/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Issues issuehandlers.DocumentProvider
	Audit  audithandlers.StatusProvider
	Logger zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	issueHandler := issuehandlers.NewHandler(config.Dependencies.Issues)
	auditHandler := audithandlers.NewHandler(config.Dependencies.Audit)
	logger := config.Dependencies.Logger

	router := chi.NewRouter()

	router.Use(ccemmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/linear/issues", issueHandler.GetDocument)
		r.Get("/linear/phases", issueHandler.ListPhases)
		r.Get("/security-audit", auditHandler.GetStatus)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until the listener fails, ctx is cancelled, or SIGINT/SIGTERM arrives.
func (w *WebAPI) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
	case <-ctx.Done():
	}

	w.logger.Info().Msg("shutdown initiated")

	// Give outstanding requests a deadline for completion.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
	defer cancel()

	err := w.server.Shutdown(shutdownCtx)
	if err != nil {
		w.logger.Error().Err(err).Msg("graceful shutdown failed")
		err = w.server.Close()
	}
	return err
}
