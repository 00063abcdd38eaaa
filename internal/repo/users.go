package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type userRepo struct {
	base
}

func NewUserRepo(db *sqlx.DB) *userRepo {
	return &userRepo{base: newBase(db)}
}

func (r *userRepo) UserExists(ctx context.Context, userID int64) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(sq.Eq{"id": userID}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func (r *userRepo) GetUser(ctx context.Context, userID int64) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *userRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		OrderBy("id").
		MustSql()

	var users []User
	if err := r.selectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(users))
	for _, u := range users {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

func (r *userRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns("first_name", "last_name", "email", "phone", "role", "created_at").
		Values(u.FirstName, u.LastName, u.Email, nullString(u.Phone), string(u.Role), u.CreatedAt).
		Suffix("RETURNING " + joinColumns(userColumns)).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if pqCode(err) == pgUniqueViolation {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return UserToEntity(user), nil
}

func (r *userRepo) UpdateUser(ctx context.Context, userID int64, upd entities.UserUpdate) (entities.User, error) {
	q := r.qb.Update("users").
		Set("first_name", upd.FirstName).
		Set("last_name", upd.LastName).
		Set("phone", nullString(upd.Phone)).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + joinColumns(userColumns))
	if upd.Role != "" {
		q = q.Set("role", string(upd.Role))
	}

	query, args := q.MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return UserToEntity(user), nil
}

// DeleteUser removes the user together with their cart and favorites.
// Users with orders are kept, since orders reference them.
func (r *userRepo) DeleteUser(ctx context.Context, userID int64) error {
	query, args := r.qb.Delete("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if pqCode(err) == pgForeignKeyViolation {
		return entities.ErrUserHasOrders
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}

// Credentials looks up the login identity for email. A missing user and a user
// without a password both report ErrInvalidCredentials.
func (r *userRepo) Credentials(ctx context.Context, email string) (entities.Credentials, error) {
	query, args := r.qb.Select("id", "email", "role", "password_hash").
		From("users").
		Where(sq.Eq{"email": email}).
		MustSql()

	var c Credentials
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Credentials{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Credentials{}, fmt.Errorf("failed to get credentials: %w", err)
	}
	if !c.PasswordHash.Valid {
		return entities.Credentials{}, entities.ErrInvalidCredentials
	}
	return CredentialsToEntity(c), nil
}

func (r *userRepo) SetPasswordHash(ctx context.Context, userID int64, hash string) error {
	query, args := r.qb.Update("users").
		Set("password_hash", hash).
		Where(sq.Eq{"id": userID}).
		MustSql()

	ok, err := r.execAffected(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set password: %w", err)
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) CountUsers(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("users").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
