package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// ProductUpdate carries the partial-update fields allowed on a product.
// Nil pointers leave the stored value untouched.
type ProductUpdate struct {
	ProductPurchasePrice *decimal.Decimal
	Price                *decimal.Decimal
	Stock                *int
	LastEditedDate       time.Time
	LastEditorEmail      *string
}

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByTitle(ctx context.Context, title string) (*entity.Product, error)
	// FindByMatchIDs fetches every product whose product_match_id is in ids,
	// in a single read.
	FindByMatchIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	// UpdateFields applies a partial update by document id. Returns false when
	// no document matched.
	UpdateFields(ctx context.Context, id string, upd ProductUpdate) (bool, error)
	// IncrementStock atomically adds quantity to the product's stock, keyed by
	// product_match_id.
	IncrementStock(ctx context.Context, productMatchID string, quantity int) error
	// DecrementStock atomically subtracts quantity from the product's stock,
	// but only when the stored stock is at least quantity. Returns false when
	// the condition did not hold (no write performed).
	DecrementStock(ctx context.Context, productMatchID string, quantity int) (bool, error)
	// Delete removes a product by document id. Returns false when absent.
	Delete(ctx context.Context, id string) (bool, error)
}
