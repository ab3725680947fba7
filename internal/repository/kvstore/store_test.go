package kvstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/internal/repository/kvstore"
	"github.com/kodig3618/Job-Tracker/pkg/database"
)

func newTestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := kvstore.NewStore(db)
	require.NoError(t, store.Init(context.Background()))
	return store
}

func TestStoreGetSet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("missing key leaves the default untouched", func(t *testing.T) {
		value := map[string]string{"preset": "default"}
		found, err := store.Get(ctx, "nope", &value)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, "default", value["preset"])
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "greeting", "hello"))

		var got string
		found, err := store.Get(ctx, "greeting", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "hello", got)
	})

	t.Run("set replaces the whole value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "greeting", "goodbye"))

		var got string
		_, err := store.Get(ctx, "greeting", &got)
		require.NoError(t, err)
		assert.Equal(t, "goodbye", got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "greeting"))
		require.NoError(t, store.Delete(ctx, "greeting"))

		var got string
		found, err := store.Get(ctx, "greeting", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestUserRepository(t *testing.T) {
	store := newTestStore(t)
	repo := kvstore.NewUserRepository(store)
	ctx := context.Background()

	alice := &domain.User{
		Username:   "alice",
		Password:   "secret1",
		Jobs:       []domain.JobRecord{},
		Activities: []domain.ActivityRecord{},
		Created:    time.Now(),
	}

	t.Run("get before create", func(t *testing.T) {
		_, err := repo.Get(ctx, "alice")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("create and get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, alice))

		got, err := repo.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "secret1", got.Password)
	})

	t.Run("duplicate create is rejected", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Username: "alice", Password: "other"})
		assert.True(t, errors.Is(err, domain.ErrUserExists))

		got, err := repo.Get(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "secret1", got.Password)
	})

	t.Run("save writes the whole user back", func(t *testing.T) {
		got, err := repo.Get(ctx, "alice")
		require.NoError(t, err)

		got.Jobs = append(got.Jobs, domain.JobRecord{
			ID: "j1", CompanyName: "Acme", JobTitle: "Engineer",
			ApplicationDate: "2024-01-10", JobStatus: domain.StatusApplied,
			CreatedAt: time.Now(),
		})
		require.NoError(t, repo.Save(ctx, got))

		reloaded, err := repo.Get(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, reloaded.Jobs, 1)
		assert.Equal(t, "j1", reloaded.Jobs[0].ID)
	})

	t.Run("save of an unknown user fails", func(t *testing.T) {
		err := repo.Save(ctx, &domain.User{Username: "mallory"})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("session pointer", func(t *testing.T) {
		current, err := repo.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Empty(t, current)

		require.NoError(t, repo.SetCurrentUser(ctx, "alice"))
		current, err = repo.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice", current)

		require.NoError(t, repo.ClearCurrentUser(ctx))
		current, err = repo.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Empty(t, current)
	})
}

func TestUserRepositoryIsolation(t *testing.T) {
	store := newTestStore(t)
	repo := kvstore.NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", Password: "secret1"}))
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", Password: "secret2"}))

	alice, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	alice.Jobs = append(alice.Jobs, domain.JobRecord{ID: "j1", CompanyName: "Acme",
		JobTitle: "Engineer", ApplicationDate: "2024-01-10", JobStatus: domain.StatusApplied})
	require.NoError(t, repo.Save(ctx, alice))

	bob, err := repo.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bob.Jobs)
	assert.Equal(t, "secret2", bob.Password)
}
