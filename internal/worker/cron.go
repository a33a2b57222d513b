package worker

// cron.go
// Background goroutine that periodically enqueues the previous day's
// reconciliation report for precompute and email delivery. A Redis SETNX
// guard ensures each date is dispatched once even with multiple instances.
// Uses the Circuit Breaker to avoid queueing work against a downed POS base.

import (
	"context"
	"fmt"
	"time"

	"cuadre/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const enviadoKeyTTL = 48 * time.Hour

// ReporteCronConfig holds all dependencies for the daily report goroutine.
type ReporteCronConfig struct {
	Dispatcher *Dispatcher
	CB         *infra.CircuitBreaker
	RDB        *redis.Client
	EmailTo    string
	Interval   time.Duration
}

// StartReporteCron launches a background goroutine that ticks every
// cfg.Interval and dispatches yesterday's report if it hasn't been sent yet.
// It respects the context for graceful shutdown.
func StartReporteCron(ctx context.Context, cfg ReporteCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()

		log.Info().Dur("interval", cfg.Interval).Msg("reporte_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reporte_cron: shutting down")
				return
			case <-ticker.C:
				dispatchReporte(ctx, cfg)
			}
		}
	}()
}

func dispatchReporte(ctx context.Context, cfg ReporteCronConfig) {
	// If CB is open the POS base is unreachable; the job would only burn retries.
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("reporte_cron: circuit breaker is open, skipping tick")
		return
	}

	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	key := fmt.Sprintf("cuadre:enviado:%s", ayer)

	ok, err := cfg.RDB.SetNX(ctx, key, "1", enviadoKeyTTL).Result()
	if err != nil {
		log.Error().Err(err).Msg("reporte_cron: setnx failed")
		return
	}
	if !ok {
		return // already dispatched for this date
	}

	if err := cfg.Dispatcher.EnqueueReporte(ctx, ReporteJobPayload{Fecha: ayer, EmailTo: cfg.EmailTo}); err != nil {
		log.Error().Err(err).Str("fecha", ayer).Msg("reporte_cron: enqueue failed")
		// Release the guard so the next tick can retry.
		_ = cfg.RDB.Del(ctx, key).Err()
		return
	}
	log.Info().Str("fecha", ayer).Msg("reporte_cron: reporte diario encolado")
}
