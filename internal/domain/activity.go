package domain

import "time"

type ActivityType string

const (
	ActivityAdd    ActivityType = "add"
	ActivityEdit   ActivityType = "edit"
	ActivityStatus ActivityType = "status"
	ActivityDelete ActivityType = "delete"
)

// ActivityLogCap bounds the per-user activity log; the oldest entries are
// dropped when a new one pushes the log past the cap.
const ActivityLogCap = 20

// ActivityRecord is one append-only log entry. Only status transitions carry
// the old/new status pair; all other types are snapshots.
type ActivityRecord struct {
	Type      ActivityType `json:"type"`
	JobTitle  string       `json:"jobTitle"`
	Company   string       `json:"company"`
	Date      time.Time    `json:"date"`
	OldStatus Status       `json:"oldStatus,omitempty"`
	NewStatus Status       `json:"newStatus,omitempty"`
}

// LogActivity pushes an entry at the head of the user's activity log and
// truncates from the tail past ActivityLogCap. The log is newest-first at
// write time, so readers never re-sort it.
func (u *User) LogActivity(entry ActivityRecord) {
	u.Activities = append([]ActivityRecord{entry}, u.Activities...)
	if len(u.Activities) > ActivityLogCap {
		u.Activities = u.Activities[:ActivityLogCap]
	}
}
