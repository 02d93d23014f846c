package cache

import "time"

const (
	CheckoutGuardKeyPrefix = "checkout.inflight:"
	CheckoutGuardTTL       = 30 * time.Second
)
