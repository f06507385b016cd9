package worker

// Jobs that exhaust their delivery attempts are parked on a per-queue dead
// letter list ("dlq:jobs:share", "dlq:jobs:digest") instead of being dropped,
// so a share or digest lost to a flaky webhook or SMTP outage can be
// inspected and replayed by hand:
//
//	LMOVE dlq:jobs:share jobs:share RIGHT LEFT

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const DLQPrefix = "dlq:"

// DeadJob is the parked form of a Job: the envelope plus why and when it
// stopped being retried. The embedded payload is exactly what a replay
// would re-enqueue.
type DeadJob struct {
	Job
	Queue    string `json:"queue"`
	Cause    string `json:"cause"`
	FailedAt string `json:"failedAt"` // RFC 3339, UTC
}

// park moves a job onto the dead letter list of its source queue.
func (p *Pool) park(ctx context.Context, queue string, job Job, cause error) {
	dead := DeadJob{
		Job:      job,
		Queue:    queue,
		Cause:    cause.Error(),
		FailedAt: time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(dead)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: encode failed, job lost")
		return
	}
	key := DLQPrefix + queue
	if err := p.rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Msg("dlq: push failed, job lost")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("type", job.Type).
		Str("cause", dead.Cause).
		Int("attempts", job.Attempts).
		Msg("dlq: job parked after final attempt")
}

// DLQLength reports how many jobs are parked for a queue, for monitoring.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
