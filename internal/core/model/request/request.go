package request

import "cadastro/internal/core/domain"

type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Age      OptionalInt `json:"age" validate:"omitnil,min=1,max=120"`
	IsActive *bool       `json:"isActive"`
}

type UpdateUserRequest struct {
	Name     *string     `json:"name" validate:"omitnil,min=1"`
	Email    *string     `json:"email" validate:"omitnil,email"`
	Age      OptionalInt `json:"age" validate:"omitnil,min=1,max=120"`
	IsActive *bool       `json:"isActive"`
}

type CreateMovieRequest struct {
	Nome          string `json:"nome" validate:"required"`
	Descricao     string `json:"descricao" validate:"required"`
	Genero        string `json:"genero" validate:"required"`
	Duracao       int    `json:"duracao" validate:"min=1,max=2147483647"`
	AnoLancamento int    `json:"anolancamento" validate:"min=1900,max=2147483647"`
}

type UpdateMovieRequest struct {
	Nome          *string `json:"nome" validate:"omitnil,min=1"`
	Descricao     *string `json:"descricao" validate:"omitnil,min=1"`
	Genero        *string `json:"genero" validate:"omitnil,min=1"`
	Duracao       *int    `json:"duracao" validate:"omitnil,min=1,max=2147483647"`
	AnoLancamento *int    `json:"anolancamento" validate:"omitnil,min=1900,max=2147483647"`
}

func (r CreateUserRequest) ToDomain() domain.User {
	user := domain.User{
		Name:     r.Name,
		Email:    r.Email,
		Age:      r.Age.Ptr(),
		IsActive: true,
	}

	if r.IsActive != nil {
		user.IsActive = *r.IsActive
	}

	return user
}

func (r UpdateUserRequest) ToPatch() domain.UserPatch {
	return domain.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Age:      r.Age.Ptr(),
		AgeSet:   r.Age.Present,
		IsActive: r.IsActive,
	}
}

func (r CreateMovieRequest) ToDomain() domain.Movie {
	return domain.Movie{
		Nome:          r.Nome,
		Descricao:     r.Descricao,
		Genero:        r.Genero,
		Duracao:       r.Duracao,
		AnoLancamento: r.AnoLancamento,
	}
}

func (r UpdateMovieRequest) ToPatch() domain.MoviePatch {
	return domain.MoviePatch{
		Nome:          r.Nome,
		Descricao:     r.Descricao,
		Genero:        r.Genero,
		Duracao:       r.Duracao,
		AnoLancamento: r.AnoLancamento,
	}
}
