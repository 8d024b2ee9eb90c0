package service

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"go-lists-api/logger"
	"go-lists-api/model"
	"go-lists-api/repository"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

// AuthService registers users, checks credentials and issues tokens.
type AuthService struct {
	users      repository.IUserRepository
	tokens     *TokenService
	bcryptCost int
}

func NewAuthService(users repository.IUserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GravatarURL returns the 200px, pg-rated gravatar for email with the
// "mystery man" fallback.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(normalizeEmail(email)))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}

// Register creates a user. ErrUserExists is returned when the email is taken.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	log := logger.Log.WithField("email", email)

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if existing != nil {
		log.Info("Registration rejected, email already in use")
		return nil, ErrUserExists
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Avatar:   GravatarURL(email),
		Password: hash,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

// Login verifies credentials and returns a signed token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	if !s.CheckPasswordHash(req.Password, user.Password) {
		logger.Log.WithField("user_id", user.ID).Warn("Login failed, wrong password")
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(model.Identity{ID: user.ID})
}

// CurrentUser loads the user behind an authenticated identity.
func (s *AuthService) CurrentUser(ctx context.Context, identity model.Identity) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
