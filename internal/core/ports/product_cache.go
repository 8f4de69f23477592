package ports

import (
	"context"

	"github.com/storecore/commerce-api/internal/core/domain"
)

// ProductCache is a read-through cache for single-product lookups.
// A miss is (nil, nil); infrastructure errors are returned so the caller can
// degrade to a repository read.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
	Invalidate(ctx context.Context, id int64) error
}
