package commentserver

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RunQuota caps scrapes per UTC day. The pipeline itself carries no
// cross-invocation state; the budget lives here in the serving layer.
// With a Redis backend the budget is shared across replicas; without one
// (or when Redis is unreachable) it degrades to a per-process counter.
type RunQuota struct {
	limit int
	rdb   *redis.Client // nil = in-memory only

	mu   sync.Mutex
	day  string
	used int

	now func() time.Time
}

// NewRunQuota builds a quota of limit runs per day. limit <= 0 disables the
// cap. redisURL can be empty to skip the shared backend.
func NewRunQuota(limit int, redisURL string) *RunQuota {
	q := &RunQuota{limit: limit, now: time.Now}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("quota: invalid redis URL, using in-process counter", slog.Any("error", err))
			return q
		}
		rdb := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("quota: redis unreachable, using in-process counter", slog.Any("error", err))
		} else {
			q.rdb = rdb
			slog.Info("quota: shared redis counter connected", slog.String("addr", opts.Addr))
		}
	}
	return q
}

// TryConsume takes one run from today's budget and reports whether the run
// may proceed. The counter rolls over at UTC midnight.
func (q *RunQuota) TryConsume(ctx context.Context) bool {
	if q.limit <= 0 {
		return true
	}
	day := q.now().UTC().Format("2006-01-02")

	if q.rdb != nil {
		key := "gc:runs:" + day
		n, err := q.rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("quota: redis incr failed, falling back to local counter", slog.Any("error", err))
		} else {
			if n == 1 {
				q.rdb.ExpireAt(ctx, key, nextUTCMidnight(q.now()))
			}
			return n <= int64(q.limit)
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if day != q.day {
		q.day = day
		q.used = 0
	}
	if q.used >= q.limit {
		return false
	}
	q.used++
	return true
}

func nextUTCMidnight(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}
