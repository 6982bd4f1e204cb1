package repository

import (
	"context"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// GenericRepository persistence port for generic names.
type GenericRepository interface {
	Create(ctx context.Context, generic *entity.Generic) error
	FindAll(ctx context.Context) ([]*entity.Generic, error)
	FindByName(ctx context.Context, name string) (*entity.Generic, error)
	// Delete removes a generic by document id. Returns false when absent.
	Delete(ctx context.Context, id string) (bool, error)
}

// CompanyRepository persistence port for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	FindAll(ctx context.Context) ([]*entity.Company, error)
	FindByName(ctx context.Context, name string) (*entity.Company, error)
}

// CategoryRepository persistence port for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindAll(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
}
