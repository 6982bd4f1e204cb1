package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/stock"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// fakeProductStore in-memory ProductStore keyed by product_match_id. Writes
// are guarded with a mutex because the engine dispatches them concurrently.
type fakeProductStore struct {
	mu      sync.Mutex
	stocks  map[string]int
	findErr error
}

func newFakeStore(stocks map[string]int) *fakeProductStore {
	return &fakeProductStore{stocks: stocks}
}

func (f *fakeProductStore) FindByMatchIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if s, ok := f.stocks[id]; ok {
			out = append(out, &entity.Product{ProductMatchID: id, Stock: s})
		}
	}
	return out, nil
}

func (f *fakeProductStore) IncrementStock(_ context.Context, id string, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stocks[id] += qty
	return nil
}

func (f *fakeProductStore) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stocks[id] < qty {
		return false, nil
	}
	f.stocks[id] -= qty
	return true, nil
}

func (f *fakeProductStore) snapshot() map[string]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]int, len(f.stocks))
	for k, v := range f.stocks {
		out[k] = v
	}
	return out
}

func item(id string, qty int) dto.StockLineItem {
	return dto.StockLineItem{ProductMatchID: id, ProductQuantity: dto.Quantity(qty)}
}

// Increase adds exactly the requested quantity and touches nothing else.
func TestIncreaseStock_AddsQuantity(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10, "P2": 3})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.IncreaseStock(context.Background(), []dto.StockLineItem{item("P1", 5)})
	require.NoError(t, err)

	assert.Equal(t, 15, store.snapshot()["P1"])
	assert.Equal(t, 3, store.snapshot()["P2"], "untouched product must keep its stock")
}

func TestIncreaseStock_MultipleItems(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10, "P2": 3, "P3": 0})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.IncreaseStock(context.Background(), []dto.StockLineItem{
		item("P1", 1), item("P2", 2), item("P3", 7),
	})
	require.NoError(t, err)

	got := store.snapshot()
	assert.Equal(t, 11, got["P1"])
	assert.Equal(t, 5, got["P2"])
	assert.Equal(t, 7, got["P3"])
}

func TestDecreaseStock_SubtractsQuantity(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.DecreaseStock(context.Background(), []dto.StockLineItem{item("P1", 4)})
	require.NoError(t, err)
	assert.Equal(t, 6, store.snapshot()["P1"])
}

// Decreasing to exactly zero is allowed; the invariant is stock >= 0.
func TestDecreaseStock_ToZero(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.DecreaseStock(context.Background(), []dto.StockLineItem{item("P1", 10)})
	require.NoError(t, err)
	assert.Equal(t, 0, store.snapshot()["P1"])
}

// A decrease past zero is rejected naming the offending product and leaves
// its stock untouched.
func TestDecreaseStock_NegativeRejected(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.DecreaseStock(context.Background(), []dto.StockLineItem{item("P1", 15)})

	var negErr *domain.NegativeStockError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, "P1", negErr.ProductID)
	assert.Equal(t, 10, store.snapshot()["P1"], "rejected item must not change stock")
}

// Sibling items of a violating decrease may still be applied; the batch is
// not all-or-nothing. This is the documented semantics, not a bug.
func TestDecreaseStock_PartialApplication(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10, "P2": 1})
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.DecreaseStock(context.Background(), []dto.StockLineItem{
		item("P1", 5), item("P2", 9),
	})

	var negErr *domain.NegativeStockError
	require.ErrorAs(t, err, &negErr)
	assert.Equal(t, "P2", negErr.ProductID)

	got := store.snapshot()
	assert.Equal(t, 5, got["P1"], "valid sibling write is applied")
	assert.Equal(t, 1, got["P2"], "violating item is not applied")
}

// Any unknown product_match_id rejects the batch wholesale before a single
// write, listing exactly the unknown identifiers.
func TestAdjustStock_MissingProducts(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	batch := []dto.StockLineItem{item("P1", 2), item("P999", 1), item("P42", 3)}
	err := uc.IncreaseStock(context.Background(), batch)

	var missErr *domain.MissingProductsError
	require.ErrorAs(t, err, &missErr)
	assert.ElementsMatch(t, []string{"P999", "P42"}, missErr.IDs)
	assert.Equal(t, 10, store.snapshot()["P1"], "no writes on a rejected batch")

	err = uc.DecreaseStock(context.Background(), batch)
	require.ErrorAs(t, err, &missErr)
	assert.ElementsMatch(t, []string{"P999", "P42"}, missErr.IDs)
	assert.Equal(t, 10, store.snapshot()["P1"])
}

// Re-applying an already-rejected batch is a no-op on stored state.
func TestAdjustStock_RejectedBatchIsIdempotent(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	batch := []dto.StockLineItem{item("P1", 2), item("P999", 1)}
	before := store.snapshot()
	for i := 0; i < 3; i++ {
		err := uc.IncreaseStock(context.Background(), batch)
		var missErr *domain.MissingProductsError
		require.ErrorAs(t, err, &missErr)
	}
	assert.Equal(t, before, store.snapshot())
}

func TestAdjustStock_MalformedBatches(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	uc := stock.NewAdjustStockUseCase(store)

	cases := map[string][]dto.StockLineItem{
		"empty batch":        {},
		"blank id":           {item("", 5)},
		"zero quantity":      {item("P1", 0)},
		"negative quantity":  {item("P1", -5)},
		"duplicate match id": {item("P1", 1), item("P1", 2)},
	}
	for name, batch := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, uc.IncreaseStock(context.Background(), batch), domain.ErrMalformedBatch)
			assert.ErrorIs(t, uc.DecreaseStock(context.Background(), batch), domain.ErrMalformedBatch)
			assert.Equal(t, 10, store.snapshot()["P1"])
		})
	}
}

// Storage failures on the snapshot read surface as-is, without writes.
func TestAdjustStock_ReadFailure(t *testing.T) {
	store := newFakeStore(map[string]int{"P1": 10})
	store.findErr = errors.New("connection reset")
	uc := stock.NewAdjustStockUseCase(store)

	err := uc.IncreaseStock(context.Background(), []dto.StockLineItem{item("P1", 5)})
	require.EqualError(t, err, "connection reset")
	assert.Equal(t, 10, store.snapshot()["P1"])
}
