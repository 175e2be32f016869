package tasks

import (
	"testing"
	"time"
)

func testExtractor() *Extractor {
	e := NewExtractor()
	e.Now = func() time.Time {
		return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	}
	return e
}

func TestExtractActionPrefix(t *testing.T) {
	got := testExtractor().Extract("TODO: call the vendor\nJust a note.")
	if len(got) != 1 {
		t.Fatalf("got %d tasks, want 1: %+v", len(got), got)
	}
	task := got[0]
	if task.TaskTitle != "call the vendor" {
		t.Fatalf("title = %q", task.TaskTitle)
	}
	if task.Priority != PriorityMedium {
		t.Fatalf("priority = %q", task.Priority)
	}
	if task.Owner != "" || task.DueDate != "" {
		t.Fatalf("owner/due should be empty: %+v", task)
	}
	if task.ID == "" {
		t.Fatal("task id missing")
	}
}

func TestExtractRuleTable(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		title string
	}{
		{"todo colon", "TODO: ship the order", "ship the order"},
		{"action dash", "Action - email the supplier", "email the supplier"},
		{"please opener", "Please review the draft", "Please review the draft"},
		{"need to opener", "need to update the photos", "need to update the photos"},
		{"follow up opener", "Follow up with the printer", "Follow up with the printer"},
		{"schedule opener", "Schedule the photo shoot", "Schedule the photo shoot"},
		{"bullet with by", "- finish mockups by Friday", "finish mockups by Friday"},
		{"bullet with due", "• invoice due next week", "invoice due next week"},
		{"bulleted todo", "- TODO: restock boxes", "restock boxes"},
	}
	e := testExtractor()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Extract(tc.line)
			if len(got) != 1 {
				t.Fatalf("got %d tasks: %+v", len(got), got)
			}
			if got[0].TaskTitle != tc.title {
				t.Fatalf("title = %q, want %q", got[0].TaskTitle, tc.title)
			}
			if got[0].Priority != PriorityMedium {
				t.Fatalf("priority = %q", got[0].Priority)
			}
		})
	}
}

func TestExtractNonMatchingLines(t *testing.T) {
	e := testExtractor()

	// Deadline words without a bullet prefix do not match.
	got := e.Extract("the report is due on Friday")
	if len(got) != 1 || got[0].TaskTitle != placeholderTitle {
		t.Fatalf("expected placeholder, got %+v", got)
	}

	// Bullet without deadline words does not match either.
	got = e.Extract("- a plain bullet note")
	if len(got) != 1 || got[0].TaskTitle != placeholderTitle {
		t.Fatalf("expected placeholder, got %+v", got)
	}
}

func TestExtractPlaceholder(t *testing.T) {
	got := testExtractor().Extract("Nothing actionable here.\nJust prose.")
	if len(got) != 1 {
		t.Fatalf("got %d tasks, want 1", len(got))
	}
	task := got[0]
	if task.TaskTitle != placeholderTitle {
		t.Fatalf("title = %q", task.TaskTitle)
	}
	if task.DueDate != "2026-08-26" {
		t.Fatalf("due = %q, want today+2d", task.DueDate)
	}
	if task.Priority != PriorityHigh {
		t.Fatalf("priority = %q", task.Priority)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if got := testExtractor().Extract("   \n \t "); len(got) != 0 {
		t.Fatalf("empty input should yield no tasks, got %+v", got)
	}
}

func TestExtractPreservesOrder(t *testing.T) {
	text := "TODO: first thing\nfiller line\nPlease do the second thing\n- third thing due soon"
	got := testExtractor().Extract(text)
	if len(got) != 3 {
		t.Fatalf("got %d tasks: %+v", len(got), got)
	}
	want := []string{"first thing", "Please do the second thing", "third thing due soon"}
	for i := range want {
		if got[i].TaskTitle != want[i] {
			t.Fatalf("task %d = %q, want %q", i, got[i].TaskTitle, want[i])
		}
	}
}
