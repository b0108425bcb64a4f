package service

import (
	"context"
	"time"

	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
)

const userService = "user"

type UserService struct {
	repo port.UserRepository
	options
}

func NewUserService(repo port.UserRepository, opts ...Option) *UserService {
	return &UserService{
		repo:    repo,
		options: newOptions(opts),
	}
}

func (s *UserService) Create(ctx context.Context, user domain.User) (saved domain.User, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, userService, "Create", nil)
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, userService, "Create", time.Since(start), err)
		finish(span, err)
	}()

	user.ID = 0
	user.Stamp(s.now())

	saved, err = s.repo.Create(ctx, user)

	if err != nil {
		return domain.User{}, err
	}

	s.telemetry.RecordBusinessEvent(ctx, "user.created", "users", saved.ID, map[string]interface{}{
		"is_active": saved.IsActive,
	})

	return saved, nil
}

func (s *UserService) FindAll(ctx context.Context, filter domain.UserFilter) (users []domain.User, err error) {
	attrs := map[string]interface{}{}

	if filter.Active != nil {
		attrs["filter.active"] = *filter.Active
	}

	ctx, span := s.telemetry.StartServiceSpan(ctx, userService, "FindAll", attrs)
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, userService, "FindAll", time.Since(start), err)
		finish(span, err)
	}()

	return s.repo.GetAll(ctx, filter)
}

func (s *UserService) FindOne(ctx context.Context, id int64) (user domain.User, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, userService, "FindOne", map[string]interface{}{"user.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, userService, "FindOne", time.Since(start), err)
		finish(span, err)
	}()

	return s.findOne(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, patch domain.UserPatch) (updated domain.User, err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, userService, "Update", map[string]interface{}{"user.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, userService, "Update", time.Since(start), err)
		finish(span, err)
	}()

	user, err := s.findOne(ctx, id)

	if err != nil {
		return domain.User{}, err
	}

	user.Apply(patch)
	user.Touch(s.now())

	updated, err = s.repo.Update(ctx, user)

	if err != nil {
		if domain.IsNotFound(err) {
			return domain.User{}, domain.NewNotFoundError(domain.UserResource, id)
		}

		return domain.User{}, err
	}

	s.telemetry.RecordBusinessEvent(ctx, "user.updated", "users", updated.ID, nil)

	return updated, nil
}

func (s *UserService) Remove(ctx context.Context, id int64) (err error) {
	ctx, span := s.telemetry.StartServiceSpan(ctx, userService, "Remove", map[string]interface{}{"user.id": id})
	start := time.Now()

	defer func() {
		s.telemetry.RecordServiceOperation(ctx, userService, "Remove", time.Since(start), err)
		finish(span, err)
	}()

	user, err := s.findOne(ctx, id)

	if err != nil {
		return err
	}

	if err = s.repo.DeleteByID(ctx, user.ID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewNotFoundError(domain.UserResource, id)
		}

		return err
	}

	s.telemetry.RecordBusinessEvent(ctx, "user.deleted", "users", id, nil)

	return nil
}

func (s *UserService) findOne(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)

	if err != nil {
		if domain.IsNotFound(err) {
			return domain.User{}, domain.NewNotFoundError(domain.UserResource, id)
		}

		return domain.User{}, err
	}

	return user, nil
}
