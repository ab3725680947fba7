package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
	"github.com/kodig3618/Job-Tracker/pkg/token"
)

const MinPasswordLength = 6

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return apperror.BadRequest("Please enter both username and password")
	}
	if len(password) < MinPasswordLength {
		return apperror.BadRequest("Password should be at least 6 characters")
	}

	user := &domain.User{
		Username:   username,
		Password:   password,
		Jobs:       []domain.JobRecord{},
		Activities: []domain.ActivityRecord{},
		Created:    time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return apperror.Conflict("Username already exists")
		}
		return err
	}
	return nil
}

// Login compares the stored and supplied passwords as plain strings. The
// stored data format predates this service and keeps no hashes; see the User
// doc comment.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperror.BadRequest("Please enter both username and password")
	}

	user, err := u.userRepo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.Unauthorized("Invalid username or password")
		}
		return "", err
	}
	if user.Password != password {
		return "", apperror.Unauthorized("Invalid username or password")
	}

	if err := u.userRepo.SetCurrentUser(ctx, username); err != nil {
		return "", err
	}

	signed, err := u.tokens.Issue(username)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return signed, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	return u.userRepo.ClearCurrentUser(ctx)
}

func (u *authUsecase) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return u.userRepo.Get(ctx, username)
}
