package records

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// KV is the persistence collaborator: key-value string storage. Each record
// store serializes its whole collection under one fixed key after every
// mutation and reads it back once at construction.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Storage keys for the record collections. Each key holds one
// JSON-serialized array, written whole on every mutation.
const (
	GoalsKey         = "vault_goals_v2"
	MemoriesKey      = "vault_memories_v1"
	NotificationsKey = "vault_notifications_v1"
)

// FilterMode selects which records a filtered view keeps.
type FilterMode string

const (
	FilterAll      FilterMode = "All"
	FilterActive   FilterMode = "Active"
	FilterAchieved FilterMode = "Achieved"
)

// ViewMode selects the sort order of a view.
type ViewMode string

const (
	ViewList     ViewMode = "List"
	ViewTimeline ViewMode = "Timeline"
)

var strictDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsStrictDate reports whether a user-entered date has the strict
// "YYYY-MM-DD" shape. Anything else (free text like "Dec 2026", the
// "No date" placeholder) is opaque text as far as chronology goes.
func IsStrictDate(date string) bool {
	return strictDate.MatchString(date)
}

// dateSortValue converts a user-entered date string to a sortable instant.
// Dates that are not strict sort to the end of a timeline.
func dateSortValue(date string) int64 {
	if !IsStrictDate(date) {
		return math.MaxInt64
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return math.MaxInt64
	}
	return t.UnixMilli()
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// containsFold reports whether needle is a case-insensitive substring of s.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
