package port

import (
	"context"

	"cadastro/internal/core/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	GetAll(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id int64) (domain.Movie, error)
	Update(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	DeleteByID(ctx context.Context, id int64) error
}

type MovieService interface {
	Create(ctx context.Context, movie domain.Movie) (domain.Movie, error)
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindOne(ctx context.Context, id int64) (domain.Movie, error)
	Update(ctx context.Context, id int64, patch domain.MoviePatch) (domain.Movie, error)
	Remove(ctx context.Context, id int64) error
}
