package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueShare  = "jobs:share"
	QueueDigest = "jobs:digest"
)

// maxDeliveryAttempts bounds redelivery before a job lands in the DLQ.
const maxDeliveryAttempts = 3

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes one job payload. A returned error requeues the job
// until maxDeliveryAttempts is reached, then it moves to the DLQ.
type Handler func(ctx context.Context, raw json.RawMessage) error

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP. A nil Redis client disables
// dispatch; callers fall back to synchronous behavior.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// Enabled reports whether async dispatch is available.
func (d *Dispatcher) Enabled() bool {
	return d != nil && d.rdb != nil
}

// EnqueueShare pushes a report-sharing job to Redis.
func (d *Dispatcher) EnqueueShare(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueShare, "share", payload)
}

// EnqueueDigest pushes a daily digest job to Redis.
func (d *Dispatcher) EnqueueDigest(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueDigest, "digest", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	if !d.Enabled() {
		return ErrDispatchDisabled
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Pool consumes the job queues with a fixed set of goroutines.
type Pool struct {
	rdb      *redis.Client
	handlers map[string]Handler
}

func NewPool(rdb *redis.Client) *Pool {
	return &Pool{rdb: rdb, handlers: make(map[string]Handler)}
}

// Register binds a handler to all jobs dequeued from the given queue.
func (p *Pool) Register(queue string, h Handler) {
	p.handlers[queue] = h
}

// Start launches numWorkers goroutines consuming every registered queue.
// Each goroutine blocks on BRPOP, zero CPU when idle.
func (p *Pool) Start(ctx context.Context, numWorkers int) {
	if p.rdb == nil {
		log.Info().Msg("worker pool disabled: no redis")
		return
	}
	for i := 0; i < numWorkers; i++ {
		go p.run(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (p *Pool) run(ctx context.Context, id int) {
	queues := make([]string, 0, len(p.handlers))
	for q := range p.handlers {
		queues = append(queues, q)
	}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop, waits up to 5s then loops to check ctx
			result, err := p.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			p.processJob(ctx, result[0], result[1])
		}
	}
}

func (p *Pool) processJob(ctx context.Context, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler, ok := p.handlers[queue]
	if !ok {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler registered")
		return
	}

	job.Attempts++
	log.Info().Str("type", job.Type).Str("queue", queue).Int("attempt", job.Attempts).Msg("processing job")

	err := handler(ctx, job.Payload)
	if err == nil {
		return
	}

	if job.Attempts >= maxDeliveryAttempts {
		p.park(ctx, queue, job, err)
		return
	}

	// Requeue with the incremented attempt count.
	encoded, mErr := json.Marshal(job)
	if mErr != nil {
		log.Error().Err(mErr).Str("queue", queue).Msg("failed to re-encode job for retry")
		return
	}
	if pushErr := p.rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
		log.Error().Err(pushErr).Str("queue", queue).Msg("failed to requeue job")
		return
	}
	log.Warn().
		Str("queue", queue).
		Str("type", job.Type).
		Int("attempt", job.Attempts).
		Err(err).
		Msg("job failed, requeued")
}
