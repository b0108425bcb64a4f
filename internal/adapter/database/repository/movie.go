package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"cadastro/internal/adapter/database"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
	tel "cadastro/internal/core/telemetry"
)

const moviesTable = "filmes"

type MovieRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewMovieRepository(db *database.DB, telemetry port.Telemetry) port.MovieRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &MovieRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func (mr *MovieRepository) Create(ctx context.Context, movie domain.Movie) (saved domain.Movie, err error) {
	ctx, done := observe(ctx, mr.telemetry, "insert", moviesTable, nil)
	defer func() { done(err) }()

	stmt, args, err := mr.db.QueryBuilder.Insert(moviesTable).
		Columns("nome", "descricao", "genero", "duracao", "anolancamento", "created_at", "updated_at").
		Values(movie.Nome, movie.Descricao, movie.Genero, movie.Duracao, movie.AnoLancamento, movie.CreatedAt, movie.UpdatedAt).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		ToSql()

	if err != nil {
		return domain.Movie{}, err
	}

	mr.telemetry.RecordRepositoryQuery(ctx, "insert", moviesTable, stmt, args)

	saved, err = scanMovie(mr.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.Movie{}, database.TranslateError(err, "insert", domain.MovieResource, 0)
	}

	return saved, nil
}

func (mr *MovieRepository) GetAll(ctx context.Context) (movies []domain.Movie, err error) {
	ctx, done := observe(ctx, mr.telemetry, "select", moviesTable, nil)
	defer func() { done(err) }()

	stmt, args, err := mr.db.QueryBuilder.Select(movieColumns...).
		From(moviesTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, err
	}

	mr.telemetry.RecordRepositoryQuery(ctx, "select", moviesTable, stmt, args)

	rows, err := mr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, database.TranslateError(err, "select", domain.MovieResource, 0)
	}

	defer rows.Close()

	movies = []domain.Movie{}

	for rows.Next() {
		movie, err := scanMovie(rows)

		if err != nil {
			return nil, database.TranslateError(err, "select", domain.MovieResource, 0)
		}

		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, database.TranslateError(err, "select", domain.MovieResource, 0)
	}

	return movies, nil
}

func (mr *MovieRepository) GetByID(ctx context.Context, id int64) (movie domain.Movie, err error) {
	ctx, done := observe(ctx, mr.telemetry, "select_one", moviesTable, map[string]interface{}{"movie.id": id})
	defer func() { done(err) }()

	stmt, args, err := mr.db.QueryBuilder.Select(movieColumns...).
		From(moviesTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Movie{}, err
	}

	mr.telemetry.RecordRepositoryQuery(ctx, "select_one", moviesTable, stmt, args)

	movie, err = scanMovie(mr.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.Movie{}, database.TranslateError(err, "select", domain.MovieResource, id)
	}

	return movie, nil
}

func (mr *MovieRepository) Update(ctx context.Context, movie domain.Movie) (updated domain.Movie, err error) {
	ctx, done := observe(ctx, mr.telemetry, "update", moviesTable, map[string]interface{}{"movie.id": movie.ID})
	defer func() { done(err) }()

	stmt, args, err := mr.db.QueryBuilder.Update(moviesTable).
		SetMap(map[string]interface{}{
			"nome":          movie.Nome,
			"descricao":     movie.Descricao,
			"genero":        movie.Genero,
			"duracao":       movie.Duracao,
			"anolancamento": movie.AnoLancamento,
			"updated_at":    movie.UpdatedAt,
		}).
		Where(sq.Eq{"id": movie.ID}).
		Suffix("RETURNING " + strings.Join(movieColumns, ", ")).
		ToSql()

	if err != nil {
		return domain.Movie{}, err
	}

	mr.telemetry.RecordRepositoryQuery(ctx, "update", moviesTable, stmt, args)

	updated, err = scanMovie(mr.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.Movie{}, database.TranslateError(err, "update", domain.MovieResource, movie.ID)
	}

	return updated, nil
}

func (mr *MovieRepository) DeleteByID(ctx context.Context, id int64) (err error) {
	ctx, done := observe(ctx, mr.telemetry, "delete", moviesTable, map[string]interface{}{"movie.id": id})
	defer func() { done(err) }()

	stmt, args, err := mr.db.QueryBuilder.Delete(moviesTable).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	mr.telemetry.RecordRepositoryQuery(ctx, "delete", moviesTable, stmt, args)

	result, err := mr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return database.TranslateError(err, "delete", domain.MovieResource, id)
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return database.TranslateError(err, "delete", domain.MovieResource, id)
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError(domain.MovieResource, id)
	}

	return nil
}
