package tasks

import (
	"encoding/csv"
	"io"

	"listinghub/pkg/models"
)

// CSVHeader is the fixed column set of the action-item export.
var CSVHeader = []string{"task_title", "owner", "due_date", "priority"}

// WriteCSV emits the action items in the fixed export format.
func WriteCSV(w io.Writer, records []models.TaskRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.TaskTitle, r.Owner, r.DueDate, r.Priority}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
