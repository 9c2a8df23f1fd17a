package models

import "encoding/json"

// Submission is one captured "join us" form entry.
type Submission struct {
	ID        int64    `json:"id"` // ms since epoch at creation
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Events    []string `json:"events"` // checkbox order
	Timestamp string   `json:"timestamp"`
	Date      string   `json:"date"` // locale display, recorded as-is
	Time      string   `json:"time"`
}

// MarshalJSON keeps events as an array when none were selected.
func (s Submission) MarshalJSON() ([]byte, error) {
	type plain Submission
	if s.Events == nil {
		s.Events = []string{}
	}
	return json.Marshal(plain(s))
}

// SubmitRequest is the body accepted by the agent's submit endpoint.
type SubmitRequest struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Events []string `json:"events"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Status is the read-only count projection shown next to the download control.
type Status struct {
	Count           int    `json:"count"`
	Label           string `json:"label"`
	DownloadEnabled bool   `json:"download_enabled"`
}

func (s Status) Empty() bool {
	return s.Count == 0
}
