package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vldmrch/storefront-orders/internal/app"
	"github.com/vldmrch/storefront-orders/internal/config"
	"github.com/vldmrch/storefront-orders/internal/handler"
	"github.com/vldmrch/storefront-orders/internal/notifier"
	"github.com/vldmrch/storefront-orders/internal/postgres"
	"github.com/vldmrch/storefront-orders/internal/repo"
	"github.com/vldmrch/storefront-orders/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)

	sender := notifier.NewSender(logger, conf.Telegram)
	worker := notifier.NewWorker(logger, sender, conf.Telegram.QueueSize)

	orderService := service.NewOrderService(logger, orderRepo, worker)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(worker)
	app.SetClosers(worker)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start(ctx)
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
