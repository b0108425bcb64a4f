package service

import (
	"context"
	"time"

	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
)

const movieService = "movie"

type MovieService struct {
	repo port.MovieRepository
	options
}

func NewMovieService(repo port.MovieRepository, opts ...Option) *MovieService {
	return &MovieService{
		repo:    repo,
		options: newOptions(opts),
	}
}

func (s *MovieService) Create(ctx context.Context, movie domain.Movie) (saved domain.Movie, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, movieService, "Create", nil)
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, movieService, "Create", time.Since(start), err)
		finish(span, err)
	}()

	movie.ID = 0
	movie.Stamp(s.now())

	saved, err = s.repo.Create(ctx, movie)

	if err != nil {
		return domain.Movie{}, err
	}

	s.telemetry.RecordBusinessEvent(ctx, "movie.created", "filmes", saved.ID, map[string]interface{}{
		"genero": saved.Genero,
	})

	return saved, nil
}

func (s *MovieService) FindAll(ctx context.Context) (movies []domain.Movie, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, movieService, "FindAll", nil)
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, movieService, "FindAll", time.Since(start), err)
		finish(span, err)
	}()

	return s.repo.GetAll(ctx)
}

func (s *MovieService) FindOne(ctx context.Context, id int64) (movie domain.Movie, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, movieService, "FindOne", map[string]interface{}{"movie.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, movieService, "FindOne", time.Since(start), err)
		finish(span, err)
	}()

	return s.findOne(ctx, id)
}

func (s *MovieService) Update(ctx context.Context, id int64, patch domain.MoviePatch) (updated domain.Movie, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, movieService, "Update", map[string]interface{}{"movie.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, movieService, "Update", time.Since(start), err)
		finish(span, err)
	}()

	movie, err := s.findOne(ctx, id)

	if err != nil {
		return domain.Movie{}, err
	}

	movie.Apply(patch)
	movie.Touch(s.now())

	updated, err = s.repo.Update(ctx, movie)

	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Movie{}, domain.NewNotFoundError(domain.MovieResource, id)
		}

		return domain.Movie{}, err
	}

	s.telemetry.RecordBusinessEvent(ctx, "movie.updated", "filmes", updated.ID, nil)

	return updated, nil
}

func (s *MovieService) Remove(ctx context.Context, id int64) (err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, movieService, "Remove", map[string]interface{}{"movie.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, movieService, "Remove", time.Since(start), err)
		finish(span, err)
	}()

	movie, err := s.findOne(ctx, id)

	if err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, movie.ID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewNotFoundError(domain.MovieResource, id)
		}

		return err
	}

	s.telemetry.RecordBusinessEvent(ctx, "movie.deleted", "filmes", id, nil)

	return nil
}

func (s *MovieService) findOne(ctx context.Context, id int64) (domain.Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)

	if err != nil {
		if domain.IsNotFound(err) {
			return domain.Movie{}, domain.NewNotFoundError(domain.MovieResource, id)
		}

		return domain.Movie{}, err
	}

	return movie, nil
}
