package intra

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func validEvent() *EventPayload {
	return &EventPayload{
		ID:        1,
		BeginAt:   "2024-01-01 10:00:00 UTC",
		EndAt:     "2024-01-01 12:00:00 UTC",
		Name:      "Event",
		Kind:      "pedago",
		CampusIDs: []int{13},
		CursusIDs: []int{21},
		CreatedAt: "2024-01-01 00:00:00 UTC",
		UpdatedAt: "2024-01-01 00:00:00 UTC",
	}
}

func TestEventPayload_Valid(t *testing.T) {
	if err := validEvent().Validate(); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestEventPayload_MissingFields(t *testing.T) {
	p := &EventPayload{}
	err := p.Validate()
	if err == nil {
		t.Fatal("empty payload should fail validation")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}

	got := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		got[f.Field] = true
	}
	for _, want := range []string{"id", "begin_at", "end_at", "name", "kind", "campus_ids", "cursus_ids", "created_at", "updated_at"} {
		if !got[want] {
			t.Errorf("missing field error for %q", want)
		}
	}
}

func TestEventPayload_OptionalFieldsOmitted(t *testing.T) {
	p := validEvent()
	p.Description = ""
	p.Location = ""
	p.MaxPeople = nil
	if err := p.Validate(); err != nil {
		t.Errorf("optional fields should not be required: %v", err)
	}
}

func TestExamPayload_ProjectFields(t *testing.T) {
	p := &ExamPayload{
		ID:        2,
		BeginAt:   "2024-01-01 10:00:00 UTC",
		EndAt:     "2024-01-01 13:00:00 UTC",
		Name:      "Exam",
		CampusID:  13,
		CreatedAt: "2024-01-01 00:00:00 UTC",
		UpdatedAt: "2024-01-01 00:00:00 UTC",
		Projects:  []ExamProject{{Name: "libft", ID: 1, Slug: "libft"}}, // url missing
	}

	err := p.Validate()
	if err == nil {
		t.Fatal("project with missing url should fail validation")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "projects[0].url" {
		t.Errorf("fields = %+v, want exactly projects[0].url", verr.Fields)
	}
}

func TestValidationError_Serializable(t *testing.T) {
	err := (&EventPayload{}).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected *ValidationError")
	}

	data, jerr := json.Marshal(verr.Fields)
	if jerr != nil {
		t.Fatalf("marshaling fields: %v", jerr)
	}
	if !strings.Contains(string(data), `"field":"name"`) {
		t.Errorf("serialized fields missing name entry: %s", data)
	}
}

func TestEventPayload_DecodeFromWebhookBody(t *testing.T) {
	body := `{
		"id": 1492,
		"begin_at": "2024-01-01 10:00:00 UTC",
		"end_at": "2024-01-01 12:30:00 UTC",
		"name": "Piscine Discovery",
		"kind": "pedago",
		"max_people": 50,
		"prohibition_of_cancellation": true,
		"campus_ids": [13],
		"cursus_ids": [21, 9],
		"created_at": "2023-12-20 09:00:00 UTC",
		"updated_at": "2023-12-21 09:00:00 UTC"
	}`

	var p EventPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validating: %v", err)
	}
	if p.MaxPeople == nil || *p.MaxPeople != 50 {
		t.Errorf("max_people not decoded: %+v", p.MaxPeople)
	}
	if p.ProhibitionOfCancellation == nil || !*p.ProhibitionOfCancellation {
		t.Error("prohibition_of_cancellation not decoded")
	}
}
