package domain

import "context"

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortCompanyAZ SortKey = "companyAZ"
	SortCompanyZA SortKey = "companyZA"
	SortTitleAZ   SortKey = "titleAZ"
	SortTitleZA   SortKey = "titleZA"
	SortDeadline  SortKey = "deadline"
)

const (
	DefaultFilter = "all"
	DefaultSort   = SortNewest
)

// QueryCriteria parameterizes the job list view. Zero values mean "no search,
// no status filter, newest first".
type QueryCriteria struct {
	Search       string  `form:"search"`
	StatusFilter string  `form:"status"`
	Sort         SortKey `form:"sort"`
}

type StatusCounts struct {
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
}

// DeadlineEntry is one row of the upcoming-deadlines panel. Urgent is a
// display flag only.
type DeadlineEntry struct {
	Job           JobRecord `json:"job"`
	DaysRemaining int       `json:"daysRemaining"`
	Urgent        bool      `json:"urgent"`
}

// ActivityView is an ActivityRecord plus its rendered, HTML-escaped feed
// message.
type ActivityView struct {
	ActivityRecord
	Message string `json:"message"`
}

type QueryUsecase interface {
	QueryJobs(ctx context.Context, criteria QueryCriteria) ([]JobRecord, error)
	StatusCounts(ctx context.Context) (StatusCounts, error)
	UpcomingDeadlines(ctx context.Context) ([]DeadlineEntry, error)
	RecentActivity(ctx context.Context) ([]ActivityView, error)
}
