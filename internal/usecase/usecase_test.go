package usecase_test

import (
	"context"
	"time"

	"github.com/kodig3618/Job-Tracker/internal/domain"
)

// fakeUserRepo is a stateful in-memory UserRepository so multi-step
// scenarios (register, login, 21 mutations) run against real
// read-modify-write cycles.
type fakeUserRepo struct {
	users   map[string]domain.User
	current string
	saveErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Get(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.Username = username
	user.Jobs = append([]domain.JobRecord(nil), user.Jobs...)
	user.Activities = append([]domain.ActivityRecord(nil), user.Activities...)
	return &user, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := f.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) Save(_ context.Context, user *domain.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, exists := f.users[user.Username]; !exists {
		return domain.ErrNotFound
	}
	f.users[user.Username] = *user
	return nil
}

func (f *fakeUserRepo) CurrentUser(_ context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeUserRepo) SetCurrentUser(_ context.Context, username string) error {
	f.current = username
	return nil
}

func (f *fakeUserRepo) ClearCurrentUser(_ context.Context) error {
	f.current = ""
	return nil
}

func (f *fakeUserRepo) seedUser(username string, jobs []domain.JobRecord) {
	f.users[username] = domain.User{
		Username: username,
		Password: "secret1",
		Jobs:     jobs,
		Created:  time.Now(),
	}
}

func sessionCtx(username string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUsername, username)
}

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}
