package intra

import (
	"fmt"
	"strings"
)

// FieldError describes one violated payload field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports all violated fields of a payload. The handler
// surfaces Fields verbatim in the 400 response body.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "invalid payload: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate checks that all required event fields are present.
func (p *EventPayload) Validate() error {
	verr := &ValidationError{}
	if p.ID == 0 {
		verr.add("id", "required")
	}
	if p.BeginAt == "" {
		verr.add("begin_at", "required")
	}
	if p.EndAt == "" {
		verr.add("end_at", "required")
	}
	if p.Name == "" {
		verr.add("name", "required")
	}
	if p.Kind == "" {
		verr.add("kind", "required")
	}
	if p.CampusIDs == nil {
		verr.add("campus_ids", "required")
	}
	if p.CursusIDs == nil {
		verr.add("cursus_ids", "required")
	}
	if p.CreatedAt == "" {
		verr.add("created_at", "required")
	}
	if p.UpdatedAt == "" {
		verr.add("updated_at", "required")
	}
	return verr.orNil()
}

// Validate checks that all required exam fields are present, including the
// fields of each listed project.
func (p *ExamPayload) Validate() error {
	verr := &ValidationError{}
	if p.ID == 0 {
		verr.add("id", "required")
	}
	if p.BeginAt == "" {
		verr.add("begin_at", "required")
	}
	if p.EndAt == "" {
		verr.add("end_at", "required")
	}
	if p.Name == "" {
		verr.add("name", "required")
	}
	if p.CampusID == 0 {
		verr.add("campus_id", "required")
	}
	if p.CreatedAt == "" {
		verr.add("created_at", "required")
	}
	if p.UpdatedAt == "" {
		verr.add("updated_at", "required")
	}
	for i, proj := range p.Projects {
		if proj.Name == "" {
			verr.add(fmt.Sprintf("projects[%d].name", i), "required")
		}
		if proj.ID == 0 {
			verr.add(fmt.Sprintf("projects[%d].id", i), "required")
		}
		if proj.Slug == "" {
			verr.add(fmt.Sprintf("projects[%d].slug", i), "required")
		}
		if proj.URL == "" {
			verr.add(fmt.Sprintf("projects[%d].url", i), "required")
		}
	}
	return verr.orNil()
}
