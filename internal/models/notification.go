package models

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`               // e.g. "goal_achieved", "target_date_soon"
	Title     string `json:"title"`              // Short headline
	Message   string `json:"message"`            // Descriptive content
	Read      bool   `json:"read"`               // True once the user dismissed it
	TargetID  string `json:"targetId,omitempty"` // Optional reference to a goal
	CreatedAt int64  `json:"createdAt"`
}
