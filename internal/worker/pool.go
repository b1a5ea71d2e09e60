package worker

import (
	"context"
	"encoding/json"
	"time"

	"planiftchop/internal/report"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReport = "jobs:report"

	// MaxReportAttempts bounds delivery retries before the job goes to the DLQ.
	MaxReportAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ReportJobPayload describes one report delivery to perform.
type ReportJobPayload struct {
	Recipients []string        `json:"recipients"`
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Include    report.Sections `json:"include"`
	Attempts   int             `json:"attempts"`
}

// ReportSender builds and delivers a report for a date range.
// Implemented by service.ReportService; declared here so the worker
// pool does not import the service layer.
type ReportSender interface {
	DeliverReport(ctx context.Context, recipients []string, start, end string, include report.Sections) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReport pushes a report delivery job to Redis.
func (d *Dispatcher) EnqueueReport(ctx context.Context, payload ReportJobPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(Job{Type: "report", Payload: data})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueReport, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the report queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, sender ReportSender, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, sender, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, sender ReportSender, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueReport).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, sender, result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, sender ReportSender, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("worker: failed to unmarshal job")
		return
	}
	if job.Type != "report" {
		log.Warn().Str("type", job.Type).Msg("worker: unknown job type — dropping")
		return
	}

	var payload ReportJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("worker: invalid report payload")
		return
	}

	err := sender.DeliverReport(ctx, payload.Recipients, payload.Start, payload.End, payload.Include)
	if err == nil {
		log.Info().
			Strs("recipients", payload.Recipients).
			Str("start", payload.Start).
			Str("end", payload.End).
			Msg("worker: report delivered")
		return
	}

	payload.Attempts++
	if payload.Attempts >= MaxReportAttempts {
		SendToDLQ(ctx, rdb, QueueReport, "report", job.Payload, err.Error(), payload.Attempts)
		return
	}

	log.Warn().
		Err(err).
		Int("attempts", payload.Attempts).
		Msg("worker: report delivery failed, requeueing")

	data, mErr := json.Marshal(payload)
	if mErr != nil {
		log.Error().Err(mErr).Msg("worker: failed to re-marshal payload")
		return
	}
	encoded, mErr := json.Marshal(Job{Type: "report", Payload: data})
	if mErr != nil {
		log.Error().Err(mErr).Msg("worker: failed to re-marshal job")
		return
	}
	if pushErr := rdb.LPush(ctx, QueueReport, encoded).Err(); pushErr != nil {
		log.Error().Err(pushErr).Msg("worker: failed to requeue job")
	}
}
