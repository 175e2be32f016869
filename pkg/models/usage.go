package models

// PlanSnapshot reports a single email's standing against the free tier
// for the current day.
type PlanSnapshot struct {
	Email     string `json:"email"`
	Pro       bool   `json:"pro"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
}
