package cache

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

var ctx = context.Background()

type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(url string) (*RedisCache, error) {
	client := redis.NewClient(
		&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		},
	)
	redisCache := &RedisCache{Client: client}

	return redisCache, nil
}

// AcquireCheckoutGuard marks a checkout as in flight for one principal and
// screening. It returns false when an equivalent checkout is already being
// created, which is how a double-submitted purchase gets rejected instead
// of opening two payment sessions.
func (r *RedisCache) AcquireCheckoutGuard(principalID, screeningID uint) (bool, error) {
	key := checkoutGuardKey(principalID, screeningID)
	return r.Client.SetNX(ctx, key, 1, CheckoutGuardTTL).Result()
}

// ReleaseCheckoutGuard frees the guard early, after the provider call
// settles; otherwise the TTL frees it.
func (r *RedisCache) ReleaseCheckoutGuard(principalID, screeningID uint) error {
	return r.Client.Del(ctx, checkoutGuardKey(principalID, screeningID)).Err()
}

func checkoutGuardKey(principalID, screeningID uint) string {
	return fmt.Sprintf("%s%d:%d", CheckoutGuardKeyPrefix, principalID, screeningID)
}
