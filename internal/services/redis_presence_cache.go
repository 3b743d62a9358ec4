package services

import (
	"context"
	"fmt"
	"time"

	"pairchat/internal/utils"

	"github.com/redis/go-redis/v9"
)

const presenceCacheTTL = 24 * time.Hour

// RedisPresenceCache mirrors user online status into redis so status queries
// do not hit the primary store. Entries expire after a day.
type RedisPresenceCache struct {
	redis *redis.Client
	ctx   context.Context
}

func NewRedisPresenceCache(redis *redis.Client, ctx context.Context) *RedisPresenceCache {
	return &RedisPresenceCache{
		redis: redis,
		ctx:   ctx,
	}
}

func (rpc *RedisPresenceCache) SetOnlineStatus(userID uint, online bool, lastSeen time.Time) error {
	statusKey := fmt.Sprintf("user_online_status_%v", userID)
	statusValue := "false"
	if online {
		statusValue = "true"
	}
	if err := rpc.redis.Set(rpc.ctx, statusKey, statusValue, presenceCacheTTL).Err(); err != nil {
		return err
	}

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userID)
	return rpc.redis.Set(rpc.ctx, lastSeenKey, lastSeen.Format(time.RFC3339Nano), presenceCacheTTL).Err()
}

func (rpc *RedisPresenceCache) GetOnlineStatus(userID uint) (bool, *time.Time, error) {
	statusKey := fmt.Sprintf("user_online_status_%v", userID)
	statusStr, err := rpc.redis.Get(rpc.ctx, statusKey).Result()
	if err != nil {
		return false, nil, err
	}

	lastSeenKey := fmt.Sprintf("user_last_seen_%v", userID)
	lastSeenStr, err := rpc.redis.Get(rpc.ctx, lastSeenKey).Result()
	if err != nil {
		return false, nil, err
	}
	lastSeen, err := utils.StrToTime(lastSeenStr)
	if err != nil {
		return false, nil, err
	}

	return statusStr == "true", lastSeen, nil
}
