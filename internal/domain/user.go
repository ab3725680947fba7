package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound   = errors.New("resource not found")
	ErrUserExists = errors.New("username already exists")
)

// User owns one person's tracked applications. Passwords are stored and
// compared in plain text: the data format is inherited from the browser-local
// era of this application and existing stores must keep loading unchanged.
type User struct {
	Username   string           `json:"username"`
	Password   string           `json:"password"`
	Jobs       []JobRecord      `json:"jobs"`
	Activities []ActivityRecord `json:"activities"`
	Created    time.Time        `json:"created"`
}

type UserRepository interface {
	Get(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
	CurrentUser(ctx context.Context) (string, error)
	SetCurrentUser(ctx context.Context, username string) error
	ClearCurrentUser(ctx context.Context) error
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
	GetUser(ctx context.Context, username string) (*User, error)
}
