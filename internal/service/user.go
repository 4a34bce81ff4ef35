package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/repository"
	"github.com/immxrtalbeast/roomhub/lib/logger/sl"
)

type UserService struct {
	users      repository.UserRepository
	log        *slog.Logger
	bcryptCost int
}

func NewUserService(users repository.UserRepository, log *slog.Logger, bcryptCost int) *UserService {
	if log == nil {
		log = slog.Default()
	}
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &UserService{users: users, log: log, bcryptCost: bcryptCost}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateSelf re-hashes the password and/or replaces the mobile token of the
// caller's own record. At least one field must be supplied. The username is
// immutable and has no update path.
func (s *UserService) UpdateSelf(ctx context.Context, callerID uuid.UUID, password, mobileToken string) error {
	const op = "service.user.updateSelf"
	log := s.log.With(slog.String("op", op), slog.String("user_id", callerID.String()))

	if password == "" && mobileToken == "" {
		return ErrNothingToUpdate
	}

	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to look up user", sl.Err(err))
		return err
	}

	if password != "" {
		hash, err := hashPassword(password, s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			return err
		}
		user.PasswordHash = hash
	}

	if mobileToken != "" {
		user.MobileToken = mobileToken
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		log.Error("failed to update user", sl.Err(err))
		return err
	}

	log.Info("user updated")
	return nil
}

func (s *UserService) DeleteSelf(ctx context.Context, callerID uuid.UUID) error {
	const op = "service.user.deleteSelf"
	log := s.log.With(slog.String("op", op), slog.String("user_id", callerID.String()))

	if err := s.users.Delete(ctx, callerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to delete user", sl.Err(err))
		return err
	}

	log.Info("user removed")
	return nil
}
