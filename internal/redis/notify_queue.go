package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"flare/internal/domain"
	"flare/pkg/e"

	"github.com/redis/go-redis/v9"
)

// NotifyQueue is the list-backed queue between the report submitter and the
// station notifier worker.
type NotifyQueue struct {
	client *redis.Client
	key    string
}

func NewNotifyQueue(client *redis.Client, key string) *NotifyQueue {
	return &NotifyQueue{client: client, key: key}
}

func (q *NotifyQueue) Enqueue(ctx context.Context, n domain.StationNotification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotifyQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.StationNotification, error) {
	var n domain.StationNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
