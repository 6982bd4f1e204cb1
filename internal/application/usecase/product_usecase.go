package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

// ProductUseCase CRUD use cases for products. Batch stock changes go through
// the stock adjustment engine, not through here.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create inserts a product after checking the title is not taken. Issues a
// product_match_id when the caller did not supply one.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.FindByTitle(ctx, in.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	matchID := in.ProductMatchID
	if matchID == "" {
		matchID = uuid.NewString()
	}
	product := &entity.Product{
		ProductMatchID:       matchID,
		Title:                in.Title,
		Generic:              in.Generic,
		Company:              in.Company,
		Category:             in.Category,
		Price:                in.Price,
		ProductPurchasePrice: in.ProductPurchasePrice,
		Stock:                in.Stock,
		CreatedDate:          time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns every product.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update applies a partial update by document id. Returns false when the
// product does not exist.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (bool, error) {
	if in.Stock != nil && *in.Stock < 0 {
		return false, domain.ErrInvalidInput
	}
	upd := repository.ProductUpdate{
		ProductPurchasePrice: in.ProductPurchasePrice,
		Price:                in.Price,
		Stock:                in.Stock,
		LastEditedDate:       time.Now(),
		LastEditorEmail:      in.LastEditorEmail,
	}
	return uc.repo.UpdateFields(ctx, id, upd)
}

// Delete removes a product by document id. Returns false when absent.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                   p.ID,
		ProductMatchID:       p.ProductMatchID,
		Title:                p.Title,
		Generic:              p.Generic,
		Company:              p.Company,
		Category:             p.Category,
		Price:                p.Price,
		ProductPurchasePrice: p.ProductPurchasePrice,
		Stock:                p.Stock,
		CreatedDate:          p.CreatedDate,
		LastEditedDate:       p.LastEditedDate,
		LastEditorEmail:      p.LastEditorEmail,
	}
}
