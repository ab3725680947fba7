package kvstore

import (
	"context"
	"log/slog"

	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
)

// Storage keys, unchanged from the original data format.
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

// loadUsers reads the full username → User mapping. Reads fail soft: on any
// storage error the default (empty mapping) is returned, matching the
// record-store contract.
func (r *userRepo) loadUsers(ctx context.Context) map[string]domain.User {
	users := make(map[string]domain.User)
	if _, err := r.store.Get(ctx, keyUsers, &users); err != nil {
		slog.Warn("user store read failed, using empty default", "error", err)
		return make(map[string]domain.User)
	}
	return users
}

func (r *userRepo) Get(ctx context.Context, username string) (*domain.User, error) {
	users := r.loadUsers(ctx)
	user, ok := users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.Username = username
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	users := r.loadUsers(ctx)
	if _, exists := users[user.Username]; exists {
		return domain.ErrUserExists
	}
	users[user.Username] = *user
	if err := r.store.Set(ctx, keyUsers, users); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

// Save writes the whole user object back under its username. The caller has
// already mutated the in-memory copy; a failed write leaves the persisted
// state authoritative.
func (r *userRepo) Save(ctx context.Context, user *domain.User) error {
	users := r.loadUsers(ctx)
	if _, exists := users[user.Username]; !exists {
		return domain.ErrNotFound
	}
	users[user.Username] = *user
	if err := r.store.Set(ctx, keyUsers, users); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *userRepo) CurrentUser(ctx context.Context) (string, error) {
	var username string
	found, err := r.store.Get(ctx, keyCurrentUser, &username)
	if err != nil {
		slog.Warn("session pointer read failed", "error", err)
		return "", nil
	}
	if !found {
		return "", nil
	}
	return username, nil
}

func (r *userRepo) SetCurrentUser(ctx context.Context, username string) error {
	if err := r.store.Set(ctx, keyCurrentUser, username); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (r *userRepo) ClearCurrentUser(ctx context.Context) error {
	if err := r.store.Delete(ctx, keyCurrentUser); err != nil {
		return apperror.Storage(err)
	}
	return nil
}
