package models

// TaskRecord is one action item extracted from an uploaded document.
// Records are transient: built per extraction call, never persisted.
type TaskRecord struct {
	ID        string `json:"id"`
	TaskTitle string `json:"task_title"`
	Owner     string `json:"owner"`              // always empty at creation
	DueDate   string `json:"due_date,omitempty"` // ISO date or empty
	Priority  string `json:"priority"`           // "Low", "Medium", "High"
}
