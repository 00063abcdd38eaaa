package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
)

type UserRepo interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	GetUser(ctx context.Context, userID int64) (entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	UpdateUser(ctx context.Context, userID int64, upd entities.UserUpdate) (entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	CountUsers(ctx context.Context) (int, error)
}

type userService struct {
	logger *slog.Logger
	users  UserRepo
	now    func() time.Time
}

func NewUserService(logger *slog.Logger, users UserRepo, clock func() time.Time) *userService {
	if clock == nil {
		clock = time.Now
	}
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		users:  users,
		now:    clock,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]entities.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID int64) (entities.User, error) {
	return s.users.GetUser(ctx, userID)
}

// CreateUser registers a user. An empty role defaults to customer.
func (s *userService) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	if u.Role == "" {
		u.Role = entities.RoleCustomer
	}
	if _, err := entities.ParseRole(string(u.Role)); err != nil {
		return entities.User{}, err
	}
	u.CreatedAt = s.now()

	created, err := s.users.CreateUser(ctx, u)
	if err != nil {
		return entities.User{}, err
	}

	s.logger.Info("user created", slog.Int64("user_id", created.ID), slog.String("role", string(created.Role)))
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID int64, upd entities.UserUpdate) (entities.User, error) {
	if upd.Role != "" {
		if _, err := entities.ParseRole(string(upd.Role)); err != nil {
			return entities.User{}, err
		}
	}
	return s.users.UpdateUser(ctx, userID, upd)
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user deleted", slog.Int64("user_id", userID))
	return nil
}
