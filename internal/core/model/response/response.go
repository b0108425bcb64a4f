package response

import (
	"time"

	"cadastro/internal/core/domain"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MovieResponse struct {
	ID            int64     `json:"id"`
	Nome          string    `json:"nome"`
	Descricao     string    `json:"descricao"`
	Genero        string    `json:"genero"`
	Duracao       int       `json:"duracao"`
	AnoLancamento int       `json:"anolancamento"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Error      string            `json:"error"`
	Errors     []ValidationError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserListResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, 0, len(users))

	for _, u := range users {
		list = append(list, NewUserResponse(u))
	}

	return list
}

func NewMovieResponse(m domain.Movie) MovieResponse {
	return MovieResponse{
		ID:            m.ID,
		Nome:          m.Nome,
		Descricao:     m.Descricao,
		Genero:        m.Genero,
		Duracao:       m.Duracao,
		AnoLancamento: m.AnoLancamento,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func NewMovieListResponse(movies []domain.Movie) []MovieResponse {
	list := make([]MovieResponse, 0, len(movies))

	for _, m := range movies {
		list = append(list, NewMovieResponse(m))
	}

	return list
}
