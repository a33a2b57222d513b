package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cuadre/internal/config"
	"cuadre/internal/infra"
	"cuadre/internal/recon"
	"cuadre/internal/repository"
	"cuadre/internal/router"
	"cuadre/internal/service"
	"cuadre/internal/worker"

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

	posDB, err := infra.NewBasePOS(cfg.POSDatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to POS postgres")
	}
	localDB, err := infra.NewBaseLocal(cfg.LocalDatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to local postgres")
	}
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Circuit breaker guarding every query against the POS base; the handlers,
	// the worker pool and the cron all share it.
	posCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker handlers are wired here (composition root) so that the pool has
	// full access to all infrastructure dependencies.
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	fuentePOS := repository.NewFuentePOS(posDB, posCB, time.Duration(cfg.POSQueryTimeoutSeconds)*time.Second)
	reporteSvc := service.NewReporteService(recon.NewGenerador(fuentePOS), rdb)

	workerHandlers := &worker.WorkerHandlers{
		Reporte: worker.NewReporteWorker(reporteSvc, dispatcher),
		Email:   worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	if cfg.ReporteCronMinutes > 0 {
		worker.StartReporteCron(ctx, worker.ReporteCronConfig{
			Dispatcher: dispatcher,
			CB:         posCB,
			RDB:        rdb,
			EmailTo:    cfg.ReporteEmailTo,
			Interval:   time.Duration(cfg.ReporteCronMinutes) * time.Minute,
		})
	}

	r := router.New(cfg, posDB, localDB, rdb, posCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("cuadre backend listening on :%d", cfg.Port)
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
