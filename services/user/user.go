package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "medicare/database/repository/user"
	"medicare/models"
	"medicare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenTTL is the lifetime of issued bearer tokens.
const TokenTTL = time.Hour

// ErrUnknownUser rejects token issuance for an email with no account.
var ErrUnknownUser = errors.New("no user registered with this email")

// ErrNotCompleted reports a user insert that the store neither confirmed
// nor faulted on.
var ErrNotCompleted = errors.New("registration could not be completed")

// DefaultUserService implements UserService. Cache is the Redis auth
// cache the admin middleware reads roles from; it may be nil, in which
// case role changes simply have no cached entry to drop.
type DefaultUserService struct {
	Repo  userRepo.UserRepository
	Cache *redis.Client
}

// Register stores a new account for an unseen email. An already-registered
// email is not an error; it is reported as created=false so the handler
// can answer with the login message.
func (s *DefaultUserService) Register(u *models.User) (bool, error) {
	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	insertedID, err := s.Repo.Create(u)
	if err != nil {
		return false, err
	}
	if insertedID == "" {
		return false, ErrNotCompleted
	}
	return true, nil
}

// GetAll returns every registered user.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IssueToken signs a bearer token for a known email.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if existing == nil {
		return "", ErrUnknownUser
	}
	return utils.GenerateToken(email, TokenTTL)
}

// IsAdmin resolves the role of the account with the given email.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return existing.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user with the given ID.
// A successful promotion drops the cached role for that email, so the
// new admin is not rejected until the cache entry expires.
func (s *DefaultUserService) PromoteToAdmin(id string) (bool, error) {
	email, matched, err := s.Repo.PromoteToAdmin(id)
	if err != nil {
		return false, err
	}
	if matched && email != "" && s.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.Cache.Del(ctx, utils.RoleCacheKey(email)).Err(); err != nil {
			utils.GetLogger().Warn("failed to drop cached role",
				zap.String("email", email), zap.Error(err))
		}
	}
	return matched, nil
}
