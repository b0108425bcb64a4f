package repository

import (
	"database/sql"
	"fmt"
	"time"

	"cadastro/internal/core/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

var userColumns = []string{"id", "name", "email", "age", "is_active", "created_at", "updated_at"}

var movieColumns = []string{"id", "nome", "descricao", "genero", "duracao", "anolancamento", "created_at", "updated_at"}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		user domain.User
		age  sql.NullInt64
	)

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&age,
		&user.IsActive,
		(*timestamp)(&user.CreatedAt),
		(*timestamp)(&user.UpdatedAt),
	)

	if err != nil {
		return domain.User{}, err
	}

	if age.Valid {
		v := int(age.Int64)
		user.Age = &v
	}

	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return user, nil
}

func scanMovie(row rowScanner) (domain.Movie, error) {
	var movie domain.Movie

	err := row.Scan(
		&movie.ID,
		&movie.Nome,
		&movie.Descricao,
		&movie.Genero,
		&movie.Duracao,
		&movie.AnoLancamento,
		(*timestamp)(&movie.CreatedAt),
		(*timestamp)(&movie.UpdatedAt),
	)

	if err != nil {
		return domain.Movie{}, err
	}

	movie.CreatedAt = movie.CreatedAt.UTC()
	movie.UpdatedAt = movie.UpdatedAt.UTC()

	return movie, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// sqlite only converts DATETIME columns to time.Time when it knows the
// declared column type, which RETURNING clauses do not always carry.
var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

type timestamp time.Time

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = timestamp(v)
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *timestamp) parse(value string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as timestamp", value)
}
