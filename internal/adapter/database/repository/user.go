package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"cadastro/internal/adapter/database"
	"cadastro/internal/core/domain"
	"cadastro/internal/core/port"
	tel "cadastro/internal/core/telemetry"
)

const usersTable = "users"

type UserRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *database.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (saved domain.User, err error) {
	ctx, done := ur.observe(ctx, "insert", nil)
	defer func() { done(err) }()

	stmt, args, err := ur.db.QueryBuilder.Insert(usersTable).
		Columns("name", "email", "age", "is_active", "created_at", "updated_at").
		Values(user.Name, user.Email, nullableInt(user.Age), user.IsActive, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "insert", usersTable, stmt, args)

	saved, err = scanUser(ur.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.User{}, database.TranslateError(err, "insert", domain.UserResource, 0)
	}

	return saved, nil
}

func (ur *UserRepository) GetAll(ctx context.Context, filter domain.UserFilter) (users []domain.User, err error) {
	ctx, done := ur.observe(ctx, "select", nil)
	defer func() { done(err) }()

	query := ur.db.QueryBuilder.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at DESC", "id DESC")

	if filter.Active != nil {
		query = query.Where(sq.Eq{"is_active": *filter.Active})
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "select", usersTable, stmt, args)

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return nil, database.TranslateError(err, "select", domain.UserResource, 0)
	}

	defer rows.Close()

	users = []domain.User{}

	for rows.Next() {
		user, err := scanUser(rows)

		if err != nil {
			return nil, database.TranslateError(err, "select", domain.UserResource, 0)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, database.TranslateError(err, "select", domain.UserResource, 0)
	}

	return users, nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id int64) (user domain.User, err error) {
	ctx, done := ur.observe(ctx, "select_one", map[string]interface{}{"user.id": id})
	defer func() { done(err) }()

	stmt, args, err := ur.db.QueryBuilder.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "select_one", usersTable, stmt, args)

	user, err = scanUser(ur.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.User{}, database.TranslateError(err, "select", domain.UserResource, id)
	}

	return user, nil
}

// Update overwrites every mutable column of the row with user's values.
func (ur *UserRepository) Update(ctx context.Context, user domain.User) (updated domain.User, err error) {
	ctx, done := ur.observe(ctx, "update", map[string]interface{}{"user.id": user.ID})
	defer func() { done(err) }()

	stmt, args, err := ur.db.QueryBuilder.Update(usersTable).
		SetMap(map[string]interface{}{
			"name":       user.Name,
			"email":      user.Email,
			"age":        nullableInt(user.Age),
			"is_active":  user.IsActive,
			"updated_at": user.UpdatedAt,
		}).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "update", usersTable, stmt, args)

	updated, err = scanUser(ur.db.QueryRowContext(ctx, stmt, args...))

	if err != nil {
		return domain.User{}, database.TranslateError(err, "update", domain.UserResource, user.ID)
	}

	return updated, nil
}

func (ur *UserRepository) DeleteByID(ctx context.Context, id int64) (err error) {
	ctx, done := ur.observe(ctx, "delete", map[string]interface{}{"user.id": id})
	defer func() { done(err) }()

	stmt, args, err := ur.db.QueryBuilder.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	ur.telemetry.RecordRepositoryQuery(ctx, "delete", usersTable, stmt, args)

	result, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		return database.TranslateError(err, "delete", domain.UserResource, id)
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return database.TranslateError(err, "delete", domain.UserResource, id)
	}

	if rowsAffected == 0 {
		return domain.NewNotFoundError(domain.UserResource, id)
	}

	return nil
}

func (ur *UserRepository) observe(ctx context.Context, operation string, attrs map[string]interface{}) (context.Context, func(error)) {
	return observe(ctx, ur.telemetry, operation, usersTable, attrs)
}

func observe(ctx context.Context, telemetry port.Telemetry, operation, table string, attrs map[string]interface{}) (context.Context, func(error)) {
	ctx, span := telemetry.StartRepositorySpan(ctx, operation, table, attrs)
	start := time.Now()

	return ctx, func(err error) {
		// a missing row is an expected outcome, not a failed operation
		if domain.IsNotFound(err) {
			err = nil
		}

		telemetry.RecordRepositoryOperation(ctx, operation, table, time.Since(start), err)
		span.End()
	}
}
