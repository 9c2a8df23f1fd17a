package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSubmissionJSONLayout(t *testing.T) {
	submission := Submission{
		ID:        1760745600000,
		Name:      "Ada",
		Email:     "ada@x.com",
		Events:    []string{"Talk", "Workshop"},
		Timestamp: "2025-10-18T00:00:00.000Z",
		Date:      "10/18/2025",
		Time:      "12:00:00 AM",
	}

	jsonData, err := json.Marshal(submission)
	if err != nil {
		t.Fatalf("Failed to marshal submission: %v", err)
	}

	want := `{"id":1760745600000,"name":"Ada","email":"ada@x.com","events":["Talk","Workshop"],"timestamp":"2025-10-18T00:00:00.000Z","date":"10/18/2025","time":"12:00:00 AM"}`
	if string(jsonData) != want {
		t.Errorf("Unexpected layout:\n got %s\nwant %s", jsonData, want)
	}
}

func TestSubmissionNilEventsMarshalAsArray(t *testing.T) {
	jsonData, err := json.Marshal(Submission{ID: 1, Name: "a", Email: "a@b.co"})
	if err != nil {
		t.Fatalf("Failed to marshal submission: %v", err)
	}
	if !strings.Contains(string(jsonData), `"events":[]`) {
		t.Errorf("Expected empty events array, got %s", jsonData)
	}
}

func TestSubmissionListRoundTrip(t *testing.T) {
	list := []Submission{
		{ID: 1, Name: "Ada", Email: "ada@x.com", Events: []string{"Talk"}},
		{ID: 2, Name: "Grace", Email: "grace@x.com", Events: []string{}},
	}

	jsonData, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("Failed to marshal list: %v", err)
	}

	var unmarshaled []Submission
	if err := json.Unmarshal(jsonData, &unmarshaled); err != nil {
		t.Fatalf("Failed to unmarshal list: %v", err)
	}

	if len(unmarshaled) != len(list) {
		t.Fatalf("Length mismatch: got %d, want %d", len(unmarshaled), len(list))
	}
	for i := range list {
		if unmarshaled[i].ID != list[i].ID || unmarshaled[i].Name != list[i].Name {
			t.Errorf("Record %d mismatch: got %+v, want %+v", i, unmarshaled[i], list[i])
		}
	}
}

func TestStatusEmpty(t *testing.T) {
	if !(Status{}).Empty() {
		t.Error("Expected zero status to be empty")
	}
	if (Status{Count: 1}).Empty() {
		t.Error("Expected non-zero status not to be empty")
	}
}
