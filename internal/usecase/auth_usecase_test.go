package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/internal/usecase"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
	"github.com/kodig3618/Job-Tracker/pkg/token"
)

func newAuthUC(repo *fakeUserRepo) (domain.AuthUsecase, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	return usecase.NewAuthUsecase(repo, tokens), tokens
}

func TestRegisterValidation(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newAuthUC(repo)
	ctx := context.Background()

	t.Run("rejects empty fields", func(t *testing.T) {
		err := uc.Register(ctx, "", "secret1")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*apperror.AppError).Code)

		err = uc.Register(ctx, "alice", "")
		require.Error(t, err)
	})

	t.Run("rejects password shorter than six characters", func(t *testing.T) {
		err := uc.Register(ctx, "alice", "five5")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 6 characters")
	})

	t.Run("accepts a six character password", func(t *testing.T) {
		require.NoError(t, uc.Register(ctx, "alice", "secret"))
	})

	t.Run("rejects duplicate usernames without overwriting", func(t *testing.T) {
		err := uc.Register(ctx, "alice", "another-password")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, err.(*apperror.AppError).Code)
		assert.Equal(t, "secret", repo.users["alice"].Password)
	})
}

func TestRegisterCreatesEmptyLists(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newAuthUC(repo)

	require.NoError(t, uc.Register(context.Background(), "bob", "secret1"))

	user := repo.users["bob"]
	assert.NotNil(t, user.Jobs)
	assert.Empty(t, user.Jobs)
	assert.NotNil(t, user.Activities)
	assert.Empty(t, user.Activities)
	assert.False(t, user.Created.IsZero())
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc, tokens := newAuthUC(repo)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "alice", "secret1"))

	t.Run("issues a token whose subject is the username", func(t *testing.T) {
		signed, err := uc.Login(ctx, "alice", "secret1")
		require.NoError(t, err)

		subject, err := tokens.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "alice", subject)
	})

	t.Run("sets the persisted session pointer", func(t *testing.T) {
		assert.Equal(t, "alice", repo.current)
	})

	t.Run("exact string comparison of passwords", func(t *testing.T) {
		_, err := uc.Login(ctx, "alice", "Secret1")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, err.(*apperror.AppError).Code)
	})

	t.Run("unknown user yields the same error as a bad password", func(t *testing.T) {
		_, badUser := uc.Login(ctx, "mallory", "secret1")
		_, badPass := uc.Login(ctx, "alice", "wrong-password")
		assert.Equal(t, badUser.Error(), badPass.Error())
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		_, err := uc.Login(ctx, "", "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*apperror.AppError).Code)
	})
}

func TestLogoutClearsSessionPointer(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newAuthUC(repo)
	ctx := context.Background()
	require.NoError(t, uc.Register(ctx, "alice", "secret1"))
	_, err := uc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))
	assert.Empty(t, repo.current)

	// logout with no session is still fine
	require.NoError(t, uc.Logout(ctx))
}
