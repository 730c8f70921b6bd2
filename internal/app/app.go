package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/vldmrch/storefront-orders/internal/config"
	"github.com/vldmrch/storefront-orders/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server

	starters []Starter
	closers  []Closer
	group    *errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "x-api-key"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", promhttp.Handler())

	httpSrv := &http.Server{
		Handler: router,
		Addr:    net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
	}

	return &application{
		logger:  logger,
		router:  router,
		httpSrv: httpSrv,
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Starter is a background task tied to the application lifetime,
// e.g. the notification worker.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

type Closer interface {
	Close() error
}

func (a *application) SetClosers(closers ...Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		s := s
		g.Go(func() error { return s.Start(gctx) })
	}
	a.group = g

	go a.startServer()

	a.logger.Info("application started")
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shutdown http server", slog.Any("error", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close background task", slog.Any("error", err))
		}
	}

	if a.group != nil {
		if err := a.group.Wait(); err != nil {
			a.logger.Error("background task failed", slog.Any("error", err))
		}
	}

	a.logger.Info("application stopped")
}
