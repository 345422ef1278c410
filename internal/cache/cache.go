// Package cache - кэш сохранённых коллекций с TTL и явной инвалидацией.
package cache

import (
	"context"
	"time"
)

// Store - хранилище байтовых значений по ключу. Get не возвращает ошибок:
// недоступный кэш равносилен промаху.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}

// DefaultTTL - время жизни записи, если не задано явно.
const DefaultTTL = 5 * time.Minute
