package stock

import (
	"context"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// ProductStore is the slice of the product persistence port the adjustment
// engine needs. repository.ProductRepository satisfies it.
type ProductStore interface {
	FindByMatchIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	IncrementStock(ctx context.Context, productMatchID string, quantity int) error
	DecrementStock(ctx context.Context, productMatchID string, quantity int) (bool, error)
}
