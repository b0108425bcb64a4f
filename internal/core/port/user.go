package port

import (
	"context"

	"cadastro/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetAll(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByID(ctx context.Context, id int64) error
}

type UserService interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindAll(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
	FindOne(ctx context.Context, id int64) (domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error)
	Remove(ctx context.Context, id int64) error
}
