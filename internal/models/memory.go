package models

// Memory is a single preserved moment in the vault. It is the simpler
// sibling of Goal: no status, no progress, no milestones.
type Memory struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"` // same convention as Goal.TargetDate
	Note      string `json:"note"`
	CreatedAt int64  `json:"createdAt"` // epoch milliseconds
}

// MemoryDraft carries the user-supplied fields of a memory create or edit.
type MemoryDraft struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Note  string `json:"note"`
}
