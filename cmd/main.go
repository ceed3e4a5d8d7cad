package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/Juangrcode/sk-cleanup-orders/docs"
	"github.com/Juangrcode/sk-cleanup-orders/internal/app"
	"github.com/Juangrcode/sk-cleanup-orders/internal/config"
	"github.com/Juangrcode/sk-cleanup-orders/internal/handler"
	"github.com/Juangrcode/sk-cleanup-orders/internal/postgres"
	"github.com/Juangrcode/sk-cleanup-orders/internal/repo"
	"github.com/Juangrcode/sk-cleanup-orders/internal/service"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/cache"
	"github.com/Juangrcode/sk-cleanup-orders/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           SK Cleanup Orders API
// @version         1.0
// @description     CRUD API для заказов сервисной службы
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache)

	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)
	app.SetHttpHandlers(httpHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

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
