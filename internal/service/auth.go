package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomhub/internal/domain"
	"github.com/immxrtalbeast/roomhub/internal/repository"
	"github.com/immxrtalbeast/roomhub/lib/logger/sl"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and bearer token issuance.
// Tokens are HS256 signed and carry the user id; passwords are stored only
// as bcrypt hashes.
type AuthService struct {
	users      repository.UserRepository
	log        *slog.Logger
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users repository.UserRepository, log *slog.Logger, secret string, tokenTTL time.Duration, bcryptCost int) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("auth secret is empty")
	}
	if log == nil {
		log = slog.Default()
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = 10
	}
	return &AuthService{
		users:      users,
		log:        log,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username, password, mobileToken string) (*domain.User, string, error) {
	const op = "service.auth.register"
	log := s.log.With(slog.String("op", op), slog.String("username", username))

	if username == "" {
		return nil, "", ErrUsernameRequired
	}
	if password == "" {
		return nil, "", ErrPasswordRequired
	}

	hash, err := hashPassword(password, s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return nil, "", err
	}

	user := domain.NewUser(username, hash, mobileToken)

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, "", ErrUserExists
		}
		log.Error("failed to create user", sl.Err(err))
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return nil, "", err
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	const op = "service.auth.login"
	log := s.log.With(slog.String("op", op), slog.String("username", username))

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		log.Error("failed to look up user", sl.Err(err))
		return nil, "", err
	}

	if !checkPassword(password, user.PasswordHash) {
		log.Warn("invalid password")
		return nil, "", ErrInvalidPassword
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return nil, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return user, token, nil
}

// ParseToken verifies the signature and expiry of a bearer token and
// returns the user id embedded at issuance time.
func (s *AuthService) ParseToken(token string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrTokenInvalid
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return id, nil
}

func (s *AuthService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func hashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
