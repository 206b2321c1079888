package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ThrottleStore keeps the last successful submission timestamp per device.
// The value is written only after a report persists; a device with no entry
// has never submitted and is always allowed through.
type ThrottleStore struct {
	client *goredis.Client
	prefix string
}

func NewThrottleStore(r *Redis) *ThrottleStore {
	return &ThrottleStore{
		client: r.Client,
		prefix: "throttle:last:",
	}
}

func (s *ThrottleStore) LastSubmission(ctx context.Context, deviceID string) (time.Time, error) {
	val, err := s.client.Get(ctx, s.prefix+deviceID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	millis, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		// Corrupt entry: treat as never-submitted rather than locking
		// the device out.
		return time.Time{}, nil
	}
	return time.UnixMilli(millis), nil
}

func (s *ThrottleStore) SetLastSubmission(ctx context.Context, deviceID string, t time.Time) error {
	return s.client.Set(ctx, s.prefix+deviceID, strconv.FormatInt(t.UnixMilli(), 10), 0).Err()
}
