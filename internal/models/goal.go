package models

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	StatusNotStarted GoalStatus = "Not Started"
	StatusInProgress GoalStatus = "In Progress"
	StatusAchieved   GoalStatus = "Achieved"
)

// StatusRank orders statuses for the list view: unfinished goals surface first.
var StatusRank = map[GoalStatus]int{
	StatusNotStarted: 0,
	StatusInProgress: 1,
	StatusAchieved:   2,
}

// NoDate is the placeholder stored when a record is saved without a date.
const NoDate = "No date"

// Milestone is a single checkable step inside a goal. Milestones are owned
// exclusively by their parent goal and are never shared.
type Milestone struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Goal represents one tracked goal in the vault.
type Goal struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	TargetDate    string      `json:"targetDate"` // strict "YYYY-MM-DD" or free text like "Dec 2026"
	Status        GoalStatus  `json:"status"`
	Progress      int         `json:"progress"` // 0..100
	FutureMessage string      `json:"futureMessage"`
	Milestones    []Milestone `json:"milestones"`
	CreatedAt     int64       `json:"createdAt"` // epoch milliseconds
	AchievedAt    *int64      `json:"achievedAt,omitempty"`
}

// GoalDraft carries the user-supplied fields of a goal create or edit.
// Progress is the manual slider value; it only counts when the draft has
// no milestones, otherwise progress is derived from milestone completion.
type GoalDraft struct {
	Title         string           `json:"title"`
	TargetDate    string           `json:"targetDate"`
	Status        GoalStatus       `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' 'Achieved'"`
	Progress      int              `json:"progress"`
	FutureMessage string           `json:"futureMessage"`
	Milestones    []MilestoneDraft `json:"milestones" validate:"dive"`
}

// MilestoneDraft is a milestone as held in the edit form before save.
// The ID is kept when the milestone already exists on the record.
type MilestoneDraft struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}
