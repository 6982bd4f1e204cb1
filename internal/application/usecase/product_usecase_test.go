package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/application/usecase"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

// fakeProductRepo in-memory ProductRepository keyed by document id.
type fakeProductRepo struct {
	nextID     int
	byID       map[string]*entity.Product
	lastUpdate repository.ProductUpdate
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = string(rune('A' + f.nextID))
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) FindAll(context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByTitle(_ context.Context, title string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByMatchIDs(_ context.Context, ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		for _, id := range ids {
			if p.ProductMatchID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateFields(_ context.Context, id string, upd repository.ProductUpdate) (bool, error) {
	p, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	f.lastUpdate = upd
	if upd.Stock != nil {
		p.Stock = *upd.Stock
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	return true, nil
}

func (f *fakeProductRepo) IncrementStock(context.Context, string, int) error {
	return nil
}

func (f *fakeProductRepo) DecrementStock(context.Context, string, int) (bool, error) {
	return true, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func TestProductCreate_IssuesMatchID(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ProductMatchID, "server must issue a product_match_id when absent")
	assert.WithinDuration(t, time.Now(), out.CreatedDate, time.Minute)
}

func TestProductCreate_KeepsCallerMatchID(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra", ProductMatchID: "P1"})
	require.NoError(t, err)
	assert.Equal(t, "P1", out.ProductMatchID)
}

func TestProductCreate_DuplicateTitleRejected(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_NegativeStockRejected(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_SetsLastEditedDate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra"})
	require.NoError(t, err)

	stock := 30
	found, err := uc.Update(context.Background(), out.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.True(t, found)
	assert.WithinDuration(t, time.Now(), repo.lastUpdate.LastEditedDate, time.Minute)
}

func TestProductUpdate_UnknownID(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	found, err := uc.Update(context.Background(), "missing", dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProductUpdate_NegativeStockRejected(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	stock := -5
	_, err := uc.Update(context.Background(), "any", dto.UpdateProductRequest{Stock: &stock})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Title: "Napa Extra"})
	require.NoError(t, err)

	found, err := uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = uc.Delete(context.Background(), out.ID)
	require.NoError(t, err)
	assert.False(t, found)
}
