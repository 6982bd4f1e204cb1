package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/store-management-api/internal/application/dto"
	"github.com/jhoicas/store-management-api/internal/domain"
	"github.com/jhoicas/store-management-api/internal/domain/entity"
	"github.com/jhoicas/store-management-api/internal/domain/repository"
)

// GenericUseCase CRUD use cases for generic names.
type GenericUseCase struct {
	repo repository.GenericRepository
}

// NewGenericUseCase builds the use case.
func NewGenericUseCase(repo repository.GenericRepository) *GenericUseCase {
	return &GenericUseCase{repo: repo}
}

// Create inserts a generic after checking the name is not taken.
func (uc *GenericUseCase) Create(ctx context.Context, in dto.CreateGenericRequest) (*dto.GenericResponse, error) {
	if in.Generic == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(ctx, in.Generic)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	generic := &entity.Generic{Name: in.Generic, CreatedDate: time.Now()}
	if err := uc.repo.Create(ctx, generic); err != nil {
		return nil, err
	}
	return &dto.GenericResponse{ID: generic.ID, Generic: generic.Name, CreatedDate: generic.CreatedDate}, nil
}

// List returns every generic name.
func (uc *GenericUseCase) List(ctx context.Context) ([]dto.GenericResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GenericResponse, 0, len(list))
	for _, g := range list {
		items = append(items, dto.GenericResponse{ID: g.ID, Generic: g.Name, CreatedDate: g.CreatedDate})
	}
	return items, nil
}

// Delete removes a generic by document id. Returns false when absent.
func (uc *GenericUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// CompanyUseCase CRUD use cases for companies.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create inserts a company after checking the name is not taken.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Company == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(ctx, in.Company)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{Name: in.Company, CreatedDate: time.Now()}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{ID: company.ID, Company: company.Name, CreatedDate: company.CreatedDate}, nil
}

// List returns every company.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyResponse{ID: c.ID, Company: c.Name, CreatedDate: c.CreatedDate})
	}
	return items, nil
}

// CategoryUseCase CRUD use cases for categories.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase builds the use case.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create inserts a category after checking the name is not taken.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByName(ctx, in.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{Name: in.Category, CreatedDate: time.Now()}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Category: category.Name, CreatedDate: category.CreatedDate}, nil
}

// List returns every category.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Category: c.Name, CreatedDate: c.CreatedDate})
	}
	return items, nil
}
