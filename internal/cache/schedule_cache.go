package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fitclub/internal/schedule"
)

// ScheduleCache keeps trainers' working hours in Redis. Hours are read on
// every slot query but change only on profile edits, so they can be cached
// aggressively as long as edits invalidate. A nil *ScheduleCache is a valid
// no-op cache; everything degrades to store reads when Redis is not
// configured.
type ScheduleCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewScheduleCache(redisURL string, ttl time.Duration, log *zap.Logger) (*ScheduleCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}
	return &ScheduleCache{rdb: redis.NewClient(opts), ttl: ttl, log: log}, nil
}

func key(trainerID int) string {
	return fmt.Sprintf("fitclub:working_hours:%d", trainerID)
}

func (c *ScheduleCache) Get(trainerID int) (schedule.WorkingHours, bool) {
	if c == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	raw, err := c.rdb.Get(ctx, key(trainerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("schedule cache read failed", zap.Int("trainer_id", trainerID), zap.Error(err))
		}
		return nil, false
	}
	var hours schedule.WorkingHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, false
	}
	return hours, true
}

func (c *ScheduleCache) Set(trainerID int, hours schedule.WorkingHours) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(hours)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := c.rdb.Set(ctx, key(trainerID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("schedule cache write failed", zap.Int("trainer_id", trainerID), zap.Error(err))
	}
}

// Invalidate drops a trainer's cached hours; called on every profile or
// working-hours edit.
func (c *ScheduleCache) Invalidate(trainerID int) {
	if c == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := c.rdb.Del(ctx, key(trainerID)).Err(); err != nil {
		c.log.Warn("schedule cache invalidation failed", zap.Int("trainer_id", trainerID), zap.Error(err))
	}
}
