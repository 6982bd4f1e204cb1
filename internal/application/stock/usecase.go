package stock

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/domain"
)

// AdjustStockUseCase applies a batch of quantity deltas to the product
// collection's stock field: increase for goods received, decrease for goods
// sold.
//
// The existence check runs against one snapshot read before any write; the
// per-item writes are atomic at the storage layer ($inc, conditional on
// stock >= n for decreases) but the batch as a whole is not: a failure on one
// line item does not roll back or cancel writes already issued for its
// siblings.
type AdjustStockUseCase struct {
	products ProductStore
}

// NewAdjustStockUseCase builds the engine over the given product store.
func NewAdjustStockUseCase(products ProductStore) *AdjustStockUseCase {
	return &AdjustStockUseCase{products: products}
}

type direction int

const (
	directionIncrease direction = iota
	directionDecrease
)

// IncreaseStock adds each line item's quantity to the matching product's
// stock. Returns MissingProductsError when any product_match_id is unknown
// (no writes performed) or ErrMalformedBatch for invalid input.
func (uc *AdjustStockUseCase) IncreaseStock(ctx context.Context, batch []dto.StockLineItem) error {
	return uc.adjust(ctx, batch, directionIncrease)
}

// DecreaseStock subtracts each line item's quantity from the matching
// product's stock, refusing any item that would drive stock below zero
// (NegativeStockError naming the product). Validation errors mirror
// IncreaseStock.
func (uc *AdjustStockUseCase) DecreaseStock(ctx context.Context, batch []dto.StockLineItem) error {
	return uc.adjust(ctx, batch, directionDecrease)
}

func (uc *AdjustStockUseCase) adjust(ctx context.Context, batch []dto.StockLineItem, dir direction) error {
	ids, err := validateBatch(batch)
	if err != nil {
		return err
	}

	// One snapshot read for the whole batch. Not re-validated against
	// concurrent modifications; the per-item writes below are individually
	// conditional instead.
	existing, err := uc.products.FindByMatchIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(existing) != len(batch) {
		found := make(map[string]bool, len(existing))
		for _, p := range existing {
			found[p.ProductMatchID] = true
		}
		var missing []string
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return &domain.MissingProductsError{IDs: missing}
	}

	// All writes are dispatched before the first failure is observed; the
	// outer ctx is passed through so a failing sibling does not cancel
	// writes already in flight.
	var g errgroup.Group
	for _, item := range batch {
		id := item.ProductMatchID
		qty := item.ProductQuantity.Int()
		g.Go(func() error {
			if dir == directionIncrease {
				return uc.products.IncrementStock(ctx, id, qty)
			}
			ok, err := uc.products.DecrementStock(ctx, id, qty)
			if err != nil {
				return err
			}
			if !ok {
				// The product passed the existence check, so the conditional
				// miss means insufficient stock.
				return &domain.NegativeStockError{ProductID: id}
			}
			return nil
		})
	}
	return g.Wait()
}

// validateBatch rejects shapes the storage layer must never see: empty
// batches, blank ids, non-positive quantities and duplicate ids (the count
// comparison above cannot distinguish duplicates from missing products).
// Returns the ordered product_match_id list on success.
func validateBatch(batch []dto.StockLineItem) ([]string, error) {
	if len(batch) == 0 {
		return nil, domain.ErrMalformedBatch
	}
	ids := make([]string, 0, len(batch))
	seen := make(map[string]bool, len(batch))
	for _, item := range batch {
		if item.ProductMatchID == "" || item.ProductQuantity.Int() <= 0 {
			return nil, domain.ErrMalformedBatch
		}
		if seen[item.ProductMatchID] {
			return nil, domain.ErrMalformedBatch
		}
		seen[item.ProductMatchID] = true
		ids = append(ids, item.ProductMatchID)
	}
	return ids, nil
}
