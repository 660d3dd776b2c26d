package contracts

import (
	"context"
	"time"
)

// StorageRepository is the persisted key-value store shared by every core
// instance, plus the change channel other instances listen on. It stands in
// for the browser's localStorage and its storage event.
type StorageRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
	Publish(ctx context.Context, channel string, payload interface{}) error
	// Subscribe returns a channel of raw payloads published on channel and a
	// stop function releasing the subscription.
	Subscribe(ctx context.Context, channel string) (<-chan string, func() error)
}
