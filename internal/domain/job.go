package domain

import (
	"context"
	"time"
)

// Status is the canonical application status vocabulary. Older exports used
// capitalized variants; those are rejected by validation, not normalized.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// DateLayout is the wire format for applicationDate and appDeadline.
const DateLayout = "2006-01-02"

// JobRecord is one tracked application. ID is assigned at creation and is
// the only durable reference to the record; list position changes under
// filtering and sorting and must never be used as identity.
type JobRecord struct {
	ID               string     `json:"id"`
	CompanyName      string     `json:"companyName"`
	JobTitle         string     `json:"jobTitle"`
	ApplicationDate  string     `json:"applicationDate"`
	JobStatus        Status     `json:"jobStatus"`
	JobLocation      string     `json:"jobLocation,omitempty"`
	AppDeadline      string     `json:"appDeadline,omitempty"`
	JobNotes         string     `json:"jobNotes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
	LastStatusUpdate *time.Time `json:"lastStatusUpdate,omitempty"`
	StatusNotes      string     `json:"statusNotes,omitempty"`
}

// JobInput carries the editable fields of a record. Every mutating operation
// validates it through the same validator pass before touching the store.
type JobInput struct {
	CompanyName     string `json:"companyName" validate:"required"`
	JobTitle        string `json:"jobTitle" validate:"required"`
	ApplicationDate string `json:"applicationDate" validate:"required,datetime=2006-01-02"`
	JobStatus       Status `json:"jobStatus" validate:"required,oneof=applied interview offer rejected"`
	JobLocation     string `json:"jobLocation" validate:"omitempty,max=200"`
	AppDeadline     string `json:"appDeadline" validate:"omitempty,datetime=2006-01-02"`
	JobNotes        string `json:"jobNotes" validate:"omitempty,max=2000"`
}

// JobExport is the downloadable snapshot of one user's job list.
type JobExport struct {
	Username   string      `json:"username"`
	ExportDate time.Time   `json:"exportDate"`
	Jobs       []JobRecord `json:"jobs"`
}

type JobUsecase interface {
	AddJob(ctx context.Context, input JobInput) (*JobRecord, error)
	UpdateJob(ctx context.Context, id string, input JobInput) (*JobRecord, error)
	UpdateStatus(ctx context.Context, id string, status Status, notes string) (*JobRecord, error)
	DeleteJob(ctx context.Context, id string) error
	ExportJobs(ctx context.Context) (*JobExport, error)
}
