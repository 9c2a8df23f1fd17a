package export

import (
	"errors"
	"strings"

	"github.com/vincentbai/watss-forms/internal/models"
)

const (
	Header          = "Name,Email,Events,Date,Time"
	DefaultFilename = "form_submissions.csv"
	ContentType     = "text/csv; charset=utf-8"

	MessageNothingToDownload = "No submissions to download yet."
)

var ErrNothingToDownload = errors.New(MessageNothingToDownload)

// Serialize renders the list as CSV text. Fields are wrapped in double quotes
// but not escaped, so values containing quotes produce the same bytes the
// page has always exported.
func Serialize(list []models.Submission) string {
	if len(list) == 0 {
		return Header + "\n"
	}

	rows := make([]string, 0, len(list)+1)
	rows = append(rows, Header)
	for _, submission := range list {
		events := "None"
		if len(submission.Events) > 0 {
			events = strings.Join(submission.Events, "; ")
		}
		rows = append(rows, strings.Join([]string{
			quote(submission.Name),
			quote(submission.Email),
			quote(events),
			quote(submission.Date),
			quote(submission.Time),
		}, ","))
	}
	return strings.Join(rows, "\n")
}

func quote(field string) string {
	return `"` + field + `"`
}
