package usecase

import (
	"context"
	"time"
)

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type noopSearchCache struct{}

func (noopSearchCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (noopSearchCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (noopSearchCache) DeleteByPattern(context.Context, string) error { return nil }
