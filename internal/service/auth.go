package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/trm"

	"golang.org/x/crypto/bcrypt"
)

type AuthRepo interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	Credentials(ctx context.Context, email string) (entities.Credentials, error)
	SetPasswordHash(ctx context.Context, userID int64, hash string) error
}

type TokenIssuer interface {
	IssueToken(userID int64, role entities.Role, ttl time.Duration) (string, error)
}

type AuthConfig struct {
	TokenTTL   time.Duration
	BcryptCost int
	Clock      func() time.Time
}

type authService struct {
	logger    *slog.Logger
	txManager trm.Manager
	users     AuthRepo
	tokens    TokenIssuer

	ttl  time.Duration
	cost int
	now  func() time.Time
}

func NewAuthService(logger *slog.Logger, txManager trm.Manager, users AuthRepo, tokens TokenIssuer, cfg AuthConfig) *authService {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		logger:    logger.With(slog.String("service", "auth")),
		txManager: txManager,
		users:     users,
		tokens:    tokens,
		ttl:       cfg.TokenTTL,
		cost:      cfg.BcryptCost,
		now:       cfg.Clock,
	}
}

// Signup registers a customer account and logs it in. Staff and admin accounts
// are created by an admin and given a password with SetPassword.
func (s *authService) Signup(ctx context.Context, req entities.Signup) (entities.Session, error) {
	hash, err := s.hash(req.Password)
	if err != nil {
		return entities.Session{}, err
	}

	var user entities.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.users.CreateUser(ctx, entities.User{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Role:      entities.RoleCustomer,
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}
		user = created
		return s.users.SetPasswordHash(ctx, user.ID, hash)
	})
	if err != nil {
		return entities.Session{}, err
	}

	s.logger.Info("user signed up", slog.Int64("user_id", user.ID))
	return s.session(user.ID, user.Email, user.Role)
}

func (s *authService) Login(ctx context.Context, email, password string) (entities.Session, error) {
	creds, err := s.users.Credentials(ctx, email)
	if err != nil {
		return entities.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return entities.Session{}, entities.ErrInvalidCredentials
		}
		return entities.Session{}, fmt.Errorf("failed to compare password: %w", err)
	}

	return s.session(creds.UserID, creds.Email, creds.Role)
}

func (s *authService) SetPassword(ctx context.Context, userID int64, password string) error {
	hash, err := s.hash(password)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	s.logger.Info("password set", slog.Int64("user_id", userID))
	return nil
}

// EnsureAdmin creates the bootstrap admin account unless email can already log in.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.users.Credentials(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entities.ErrInvalidCredentials) {
		return err
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.users.CreateUser(ctx, entities.User{
			FirstName: "Canteen",
			LastName:  "Admin",
			Email:     email,
			Role:      entities.RoleAdmin,
			CreatedAt: s.now(),
		})
		if errors.Is(err, entities.ErrEmailTaken) {
			s.logger.Warn("bootstrap admin email belongs to an account without a password", slog.String("email", email))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		if err := s.users.SetPasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}

		s.logger.Info("bootstrap admin created", slog.Int64("user_id", user.ID))
		return nil
	})
}

func (s *authService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) session(userID int64, email string, role entities.Role) (entities.Session, error) {
	expiresAt := s.now().Add(s.ttl)
	token, err := s.tokens.IssueToken(userID, role, s.ttl)
	if err != nil {
		return entities.Session{}, err
	}
	return entities.Session{UserID: userID, Email: email, Role: role, Token: token, ExpiresAt: expiresAt}, nil
}
