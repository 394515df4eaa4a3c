package util

import (
	"context"

	"github.com/Happykiller/DraftDream-sub004/db"
)

// CacheService is the usecase-facing view of the Redis document cache.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) Set(ctx context.Context, collection, id string, doc any) error {
	return db.CacheDocument(ctx, collection, id, doc)
}

func (c *CacheService) Get(ctx context.Context, collection, id string, dest any) (bool, error) {
	return db.GetCachedDocument(ctx, collection, id, dest)
}

func (c *CacheService) Delete(ctx context.Context, collection, id string) error {
	return db.DeleteCachedDocument(ctx, collection, id)
}
