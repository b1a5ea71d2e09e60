package worker

// weekly_cron.go
// Background goroutine that enqueues the weekly digest report once per
// week, at the configured weekday and hour. A Redis SETNX key scoped to
// the ISO week guarantees at-most-once delivery even when several
// instances of the server run the cron concurrently.

import (
	"context"
	"fmt"
	"time"

	"planiftchop/internal/report"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const digestTickInterval = time.Minute

// DigestCronConfig holds all dependencies for the weekly digest goroutine.
type DigestCronConfig struct {
	RDB        *redis.Client
	Dispatcher *Dispatcher
	Recipients func(ctx context.Context) ([]string, error)
	Weekday    time.Weekday
	Hour       int
}

// StartWeeklyDigestCron launches a background goroutine that ticks every
// minute and, on the configured weekday/hour, enqueues a full report for
// the current week. It respects the context for graceful shutdown.
func StartWeeklyDigestCron(ctx context.Context, cfg DigestCronConfig) {
	go func() {
		ticker := time.NewTicker(digestTickInterval)
		defer ticker.Stop()

		log.Info().
			Str("weekday", cfg.Weekday.String()).
			Int("hour", cfg.Hour).
			Msg("digest_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("digest_cron: shutting down")
				return
			case <-ticker.C:
				tickDigest(ctx, cfg, time.Now())
			}
		}
	}()
}

func tickDigest(ctx context.Context, cfg DigestCronConfig, now time.Time) {
	if now.Weekday() != cfg.Weekday || now.Hour() != cfg.Hour {
		return
	}

	// One digest per ISO week, across all server instances
	year, week := now.ISOWeek()
	dedupeKey := fmt.Sprintf("digest:%d-W%02d", year, week)
	ok, err := cfg.RDB.SetNX(ctx, dedupeKey, now.UTC().Format(time.RFC3339), 8*24*time.Hour).Result()
	if err != nil {
		log.Error().Err(err).Msg("digest_cron: dedupe check failed")
		return
	}
	if !ok {
		return // already sent this week
	}

	recipients, err := cfg.Recipients(ctx)
	if err != nil {
		log.Error().Err(err).Msg("digest_cron: failed to resolve recipients")
		return
	}
	if len(recipients) == 0 {
		log.Warn().Msg("digest_cron: no family members with an email — skipping digest")
		return
	}

	start, end := report.WeekRange(now)
	payload := ReportJobPayload{
		Recipients: recipients,
		Start:      start,
		End:        end,
		Include:    report.Sections{Planning: true, Stock: true, ShoppingList: true},
	}
	if err := cfg.Dispatcher.EnqueueReport(ctx, payload); err != nil {
		log.Error().Err(err).Msg("digest_cron: failed to enqueue digest")
		return
	}

	log.Info().
		Str("start", start).
		Str("end", end).
		Int("recipients", len(recipients)).
		Msg("digest_cron: weekly digest enqueued")
}
