package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/roshdman/backend/src/domain"
	"github.com/roshdman/backend/src/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the fixed cost factor the product has always used.
const bcryptCost = 10

// loginFailedMsg is deliberately identical for unknown email and wrong
// password so responses do not leak which one was off.
const loginFailedMsg = "incorrect email or password"

type IdentityService struct {
	store *repository.Store
}

func NewIdentityService(store *repository.Store) *IdentityService {
	return &IdentityService{store: store}
}

// logger wraps the execution context with component info
func (s *IdentityService) logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx).With().Str("service", "identity").Logger()
	return &l
}

// Register creates a new account. Emails are unique, compared exactly as
// stored. The returned projection never includes the password hash.
func (s *IdentityService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	var result domain.PublicUser

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.FindUserByEmail(email) != nil {
			s.logger(ctx).Warn().Str("email", email).Msg("email already registered")
			return domain.NewError(
				domain.ErrorCodeResourceConflict,
				fmt.Errorf("email %q already registered", email),
				domain.WithMsg("email is already registered"),
			)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return err
		}

		user := domain.User{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
		}
		doc.Users = append(doc.Users, user)
		result = user.Public()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("user_id", result.ID).Str("email", result.Email).Msg("user registered")
	return &result, nil
}

// Login verifies credentials and returns the public user fields. No session
// token is issued; callers carry the returned id on subsequent requests.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	var result domain.PublicUser

	err := s.store.View(ctx, func(doc *domain.Document) error {
		user := doc.FindUserByEmail(email)
		if user == nil {
			s.logger(ctx).Warn().Str("email", email).Msg("login failed: user not found")
			return domain.NewError(
				domain.ErrorCodeAuthNotAuthenticated,
				errors.New("user not found"),
				domain.WithMsg(loginFailedMsg),
			)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			s.logger(ctx).Warn().Str("email", email).Msg("login failed: password mismatch")
			return domain.NewError(
				domain.ErrorCodeAuthNotAuthenticated,
				err,
				domain.WithMsg(loginFailedMsg),
			)
		}

		result = user.Public()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger(ctx).Info().Str("user_id", result.ID).Msg("user logged in")
	return &result, nil
}
