package tasks

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"listinghub/pkg/models"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	placeholderTitle   = "Review document and define next steps"
	placeholderDueDays = 2
)

// rule is one entry of the ordered extraction table. Match receives a line
// with leading bullet characters already stripped and returns the task
// title when the rule fires.
type rule struct {
	name  string
	match func(line string) (string, bool)
}

var (
	actionPrefixRe = regexp.MustCompile(`(?i)^(?:action|todo)\s*[:\-]\s*(.+)$`)
	imperativeRe   = regexp.MustCompile(`(?i)^(?:please|need to|we should|we will|follow up|send|call|email|schedule|prepare)\b\s*\S.*$`)
)

// rules are evaluated in order; the first match wins for a line.
var rules = []rule{
	{
		name: "action-prefix",
		match: func(line string) (string, bool) {
			m := actionPrefixRe.FindStringSubmatch(line)
			if m == nil {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		},
	},
	{
		name: "imperative-opener",
		match: func(line string) (string, bool) {
			if !imperativeRe.MatchString(line) {
				return "", false
			}
			return line, true
		},
	},
	{
		name: "bullet-deadline",
		match: func(line string) (string, bool) {
			lower := strings.ToLower(line)
			if strings.Contains(lower, " by ") || strings.Contains(lower, " due ") {
				return line, true
			}
			return "", false
		},
	},
}

// Extractor scans document text line by line against the rule table.
type Extractor struct {
	// Now is overridable in tests; drives the placeholder due date.
	Now func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract returns the ordered action items found in text. A non-empty
// document with no matching lines yields exactly one high-priority
// placeholder task due in two days.
func (e *Extractor) Extract(text string) []models.TaskRecord {
	var out []models.TaskRecord

	hadBullet := false
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line, hadBullet = stripBullet(line)

		for _, r := range rules {
			// the bullet-deadline rule only applies to bullet lines
			if r.name == "bullet-deadline" && !hadBullet {
				continue
			}
			title, ok := r.match(line)
			if !ok {
				continue
			}
			out = append(out, models.TaskRecord{
				ID:        uuid.NewString(),
				TaskTitle: title,
				Owner:     "",
				DueDate:   "",
				Priority:  PriorityMedium,
			})
			break
		}
	}

	if len(out) == 0 && strings.TrimSpace(text) != "" {
		out = append(out, models.TaskRecord{
			ID:        uuid.NewString(),
			TaskTitle: placeholderTitle,
			Owner:     "",
			DueDate:   e.now().AddDate(0, 0, placeholderDueDays).Format("2006-01-02"),
			Priority:  PriorityHigh,
		})
	}
	return out
}

func (e *Extractor) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// stripBullet removes leading "-"/"•" markers and the whitespace after them.
func stripBullet(line string) (string, bool) {
	trimmed := strings.TrimLeft(line, "-• \t")
	return strings.TrimSpace(trimmed), trimmed != line
}
