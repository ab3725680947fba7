package usecase

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kodig3618/Job-Tracker/internal/domain"
)

// QueryConfig carries the dashboard view parameters. Zero values fall back
// to the reference behavior (14-day horizon, 3-day urgency, 5-entry panels).
type QueryConfig struct {
	DeadlineHorizonDays int
	DeadlineUrgentDays  int
	DeadlineLimit       int
	ActivityLimit       int
}

type queryUsecase struct {
	userRepo domain.UserRepository
	cfg      QueryConfig
	collator *collate.Collator
}

func NewQueryUsecase(userRepo domain.UserRepository, cfg QueryConfig) domain.QueryUsecase {
	if cfg.DeadlineHorizonDays <= 0 {
		cfg.DeadlineHorizonDays = 14
	}
	if cfg.DeadlineUrgentDays <= 0 {
		cfg.DeadlineUrgentDays = 3
	}
	if cfg.DeadlineLimit <= 0 {
		cfg.DeadlineLimit = 5
	}
	if cfg.ActivityLimit <= 0 {
		cfg.ActivityLimit = 5
	}
	return &queryUsecase{
		userRepo: userRepo,
		cfg:      cfg,
		collator: collate.New(language.English),
	}
}

// QueryJobs runs the view pipeline in fixed order: search filter, status
// filter, then a stable sort. It never mutates the stored list.
func (u *queryUsecase) QueryJobs(ctx context.Context, criteria domain.QueryCriteria) ([]domain.JobRecord, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.JobRecord, len(user.Jobs))
	copy(jobs, user.Jobs)

	if search := strings.ToLower(strings.TrimSpace(criteria.Search)); search != "" {
		filtered := jobs[:0]
		for _, job := range jobs {
			if matchesSearch(job, search) {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	if f := criteria.StatusFilter; f != "" && f != domain.DefaultFilter {
		filtered := jobs[:0]
		for _, job := range jobs {
			if string(job.JobStatus) == f {
				filtered = append(filtered, job)
			}
		}
		jobs = filtered
	}

	u.sortJobs(jobs, criteria.Sort)
	return jobs, nil
}

func matchesSearch(job domain.JobRecord, search string) bool {
	for _, field := range []string{job.CompanyName, job.JobTitle, job.JobNotes, job.JobLocation} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// parseDate tolerates malformed dates: a zero time compares equal to itself,
// so records with unparseable dates keep their input order under the stable
// sort.
func parseDate(value string) time.Time {
	t, err := time.ParseInLocation(domain.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (u *queryUsecase) sortJobs(jobs []domain.JobRecord, key domain.SortKey) {
	if key == "" {
		key = domain.DefaultSort
	}
	switch key {
	case domain.SortNewest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return parseDate(jobs[i].ApplicationDate).After(parseDate(jobs[j].ApplicationDate))
		})
	case domain.SortOldest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return parseDate(jobs[i].ApplicationDate).Before(parseDate(jobs[j].ApplicationDate))
		})
	case domain.SortCompanyAZ:
		sort.SliceStable(jobs, func(i, j int) bool {
			return u.collator.CompareString(jobs[i].CompanyName, jobs[j].CompanyName) < 0
		})
	case domain.SortCompanyZA:
		sort.SliceStable(jobs, func(i, j int) bool {
			return u.collator.CompareString(jobs[j].CompanyName, jobs[i].CompanyName) < 0
		})
	case domain.SortTitleAZ:
		sort.SliceStable(jobs, func(i, j int) bool {
			return u.collator.CompareString(jobs[i].JobTitle, jobs[j].JobTitle) < 0
		})
	case domain.SortTitleZA:
		sort.SliceStable(jobs, func(i, j int) bool {
			return u.collator.CompareString(jobs[j].JobTitle, jobs[i].JobTitle) < 0
		})
	case domain.SortDeadline:
		// records without a deadline sort last, keeping input order among
		// themselves
		sort.SliceStable(jobs, func(i, j int) bool {
			di, dj := jobs[i].AppDeadline, jobs[j].AppDeadline
			if di == "" {
				return false
			}
			if dj == "" {
				return true
			}
			return parseDate(di).Before(parseDate(dj))
		})
	}
}

func (u *queryUsecase) StatusCounts(ctx context.Context) (domain.StatusCounts, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return domain.StatusCounts{}, err
	}

	var counts domain.StatusCounts
	for _, job := range user.Jobs {
		switch job.JobStatus {
		case domain.StatusApplied:
			counts.Applied++
		case domain.StatusInterview:
			counts.Interview++
		case domain.StatusOffer:
			counts.Offer++
		case domain.StatusRejected:
			counts.Rejected++
		}
		// unknown statuses land in no bucket
	}
	return counts, nil
}

func (u *queryUsecase) UpcomingDeadlines(ctx context.Context) ([]domain.DeadlineEntry, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}

	today := startOfDay(time.Now())
	horizon := today.AddDate(0, 0, u.cfg.DeadlineHorizonDays)

	entries := []domain.DeadlineEntry{}
	for _, job := range user.Jobs {
		if job.AppDeadline == "" {
			continue
		}
		deadline := parseDate(job.AppDeadline)
		if deadline.IsZero() || deadline.Before(today) || deadline.After(horizon) {
			continue
		}
		days := int(deadline.Sub(today).Hours() / 24)
		entries = append(entries, domain.DeadlineEntry{
			Job:           job,
			DaysRemaining: days,
			Urgent:        days <= u.cfg.DeadlineUrgentDays,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DaysRemaining < entries[j].DaysRemaining
	})
	if len(entries) > u.cfg.DeadlineLimit {
		entries = entries[:u.cfg.DeadlineLimit]
	}
	return entries, nil
}

// RecentActivity returns the head of the log; the log is maintained
// newest-first at write time, so no re-sorting happens here.
func (u *queryUsecase) RecentActivity(ctx context.Context) ([]domain.ActivityView, error) {
	user, err := currentUser(ctx, u.userRepo)
	if err != nil {
		return nil, err
	}

	activities := user.Activities
	if len(activities) > u.cfg.ActivityLimit {
		activities = activities[:u.cfg.ActivityLimit]
	}

	views := make([]domain.ActivityView, 0, len(activities))
	for _, entry := range activities {
		views = append(views, domain.ActivityView{
			ActivityRecord: entry,
			Message:        activityMessage(entry),
		})
	}
	return views, nil
}

// activityMessage renders one feed line as an HTML fragment. User-supplied
// fields are escaped before interpolation; this is a hard contract of the
// rendered output, not a nicety.
func activityMessage(entry domain.ActivityRecord) string {
	title := html.EscapeString(entry.JobTitle)
	company := html.EscapeString(entry.Company)

	switch entry.Type {
	case domain.ActivityAdd:
		return fmt.Sprintf("Applied to <strong>%s</strong> at <strong>%s</strong>", title, company)
	case domain.ActivityStatus:
		return fmt.Sprintf("Updated <strong>%s</strong> status from <strong>%s</strong> to <strong>%s</strong>",
			title, capitalizeFirst(string(entry.OldStatus)), capitalizeFirst(string(entry.NewStatus)))
	case domain.ActivityDelete:
		return fmt.Sprintf("Deleted <strong>%s</strong> application at <strong>%s</strong>", title, company)
	case domain.ActivityEdit:
		return fmt.Sprintf("Edited <strong>%s</strong> application at <strong>%s</strong>", title, company)
	default:
		return fmt.Sprintf("Activity related to <strong>%s</strong> at <strong>%s</strong>", title, company)
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
