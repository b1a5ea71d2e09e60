package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planiftchop/internal/config"
	"planiftchop/internal/infra"
	"planiftchop/internal/notify"
	"planiftchop/internal/repository"
	"planiftchop/internal/router"
	"planiftchop/internal/service"
	"planiftchop/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	mailCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	notifier, err := notify.New(cfg, mailCB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure notifier")
	}
	log.Info().Str("notifier", notifier.Name()).Msg("notifier configured")

	// Worker pool and weekly digest cron are wired here (composition root)
	// so they have full access to all infrastructure dependencies.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dishRepo := repository.NewDishRepository(db)
	stockRepo := repository.NewStockRepository(db)
	planRepo := repository.NewPlanRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	memberSvc := service.NewMemberService(memberRepo)
	shoppingSvc := service.NewShoppingService(planRepo, dishRepo, stockRepo)
	dispatcher := worker.NewDispatcher(rdb)
	reportSvc := service.NewReportService(cfg.UserID, planRepo, dishRepo, stockRepo, memberSvc, shoppingSvc, notifier, dispatcher)

	worker.StartWorkerPool(ctx, rdb, reportSvc, cfg.WorkerPoolSize)
	worker.StartWeeklyDigestCron(ctx, worker.DigestCronConfig{
		RDB:        rdb,
		Dispatcher: dispatcher,
		Recipients: func(ctx context.Context) ([]string, error) {
			return memberSvc.Emails(ctx, cfg.UserID)
		},
		Weekday: time.Weekday(cfg.DigestWeekday),
		Hour:    cfg.DigestHour,
	})

	r := router.New(cfg, db, rdb, notifier, mailCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Planif-Tchop backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
