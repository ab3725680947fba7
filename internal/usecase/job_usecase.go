package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kodig3618/Job-Tracker/internal/domain"
	"github.com/kodig3618/Job-Tracker/pkg/apperror"
	"github.com/kodig3618/Job-Tracker/pkg/validation"
)

type jobUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewJobUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{userRepo: userRepo, validate: validate}
}

// currentUser resolves the session user from the request context. Every job
// operation is scoped to this user; there is no way to address a foreign
// user's list.
func currentUser(ctx context.Context, repo domain.UserRepository) (*domain.User, error) {
	username, ok := domain.UsernameFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("No active session")
	}
	user, err := repo.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("No active session")
		}
		return nil, err
	}
	return user, nil
}

// validateInput is the single validation pass every mutating operation runs
// before it touches the store.
func (u *jobUsecase) validateInput(input domain.JobInput) error {
	if err := u.validate.Struct(input); err != nil {
		return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	return nil
}

func findJob(jobs []domain.JobRecord, id string) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (u *jobUsecase) AddJob(ctx context.Context, input domain.JobInput) (*domain.JobRecord, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}
	if err := u.validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	job := domain.JobRecord{
		ID:              uuid.NewString(),
		CompanyName:     input.CompanyName,
		JobTitle:        input.JobTitle,
		ApplicationDate: input.ApplicationDate,
		JobStatus:       input.JobStatus,
		JobLocation:     input.JobLocation,
		AppDeadline:     input.AppDeadline,
		JobNotes:        input.JobNotes,
		CreatedAt:       now,
	}

	// list tail is insertion order, not display order
	user.Jobs = append(user.Jobs, job)
	user.LogActivity(domain.ActivityRecord{
		Type:     domain.ActivityAdd,
		JobTitle: job.JobTitle,
		Company:  job.CompanyName,
		Date:     now,
	})

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return &job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, input domain.JobInput) (*domain.JobRecord, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}
	if err := u.validateInput(input); err != nil {
		return nil, err
	}

	i := findJob(user.Jobs, id)
	if i < 0 {
		return nil, apperror.NotFound("Job application not found")
	}

	now := time.Now()
	job := domain.JobRecord{
		ID:              user.Jobs[i].ID,
		CompanyName:     input.CompanyName,
		JobTitle:        input.JobTitle,
		ApplicationDate: input.ApplicationDate,
		JobStatus:       input.JobStatus,
		JobLocation:     input.JobLocation,
		AppDeadline:     input.AppDeadline,
		JobNotes:        input.JobNotes,
		CreatedAt:       user.Jobs[i].CreatedAt,
		UpdatedAt:       &now,
	}
	user.Jobs[i] = job

	user.LogActivity(domain.ActivityRecord{
		Type:     domain.ActivityEdit,
		JobTitle: job.JobTitle,
		Company:  job.CompanyName,
		Date:     now,
	})

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateStatus is the one mutation whose activity entry records a transition
// rather than a snapshot.
func (u *jobUsecase) UpdateStatus(ctx context.Context, id string, status domain.Status, notes string) (*domain.JobRecord, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}
	if err := u.validate.Var(status, "required,oneof=applied interview offer rejected"); err != nil {
		return nil, apperror.BadRequest("Invalid status value")
	}

	i := findJob(user.Jobs, id)
	if i < 0 {
		return nil, apperror.NotFound("Job application not found")
	}

	now := time.Now()
	job := &user.Jobs[i]
	oldStatus := job.JobStatus

	job.JobStatus = status
	if notes != "" {
		job.StatusNotes = notes
	}
	job.LastStatusUpdate = &now

	user.LogActivity(domain.ActivityRecord{
		Type:      domain.ActivityStatus,
		JobTitle:  job.JobTitle,
		Company:   job.CompanyName,
		Date:      now,
		OldStatus: oldStatus,
		NewStatus: status,
	})

	if err := u.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	updated := *job
	return &updated, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return err
	}

	i := findJob(user.Jobs, id)
	if i < 0 {
		return apperror.NotFound("Job application not found")
	}

	// snapshot before removal; the record is gone by the time the log entry
	// is read
	deleted := user.Jobs[i]
	user.Jobs = append(user.Jobs[:i], user.Jobs[i+1:]...)

	user.LogActivity(domain.ActivityRecord{
		Type:     domain.ActivityDelete,
		JobTitle: deleted.JobTitle,
		Company:  deleted.CompanyName,
		Date:     time.Now(),
	})

	return u.userRepo.Save(ctx, user)
}

// ExportJobs is a pure snapshot: no mutation, no activity entry.
func (u *jobUsecase) ExportJobs(ctx context.Context) (*domain.JobExport, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}
	jobs := user.Jobs
	if jobs == nil {
		jobs = []domain.JobRecord{}
	}
	return &domain.JobExport{
		Username:   user.Username,
		ExportDate: time.Now(),
		Jobs:       jobs,
	}, nil
}
