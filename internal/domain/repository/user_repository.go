package repository

import (
	"context"

	"github.com/jhoicas/store-management-api/internal/domain/entity"
)

// UserRepository persistence port for users.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
