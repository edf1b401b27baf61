// Package intra defines the payload shapes delivered by the 42 intra
// webhook platform. Payloads are request-scoped: decoded from one request
// body, validated, formatted, and discarded.
package intra

// Timestamps arrive as fixed-format strings ("2006-01-02 15:04:05 UTC"),
// not RFC 3339, so they are carried verbatim and parsed only for display.

// EventPayload is the body of an event webhook.
type EventPayload struct {
	ID                        int    `json:"id"`
	BeginAt                   string `json:"begin_at"`
	EndAt                     string `json:"end_at"`
	Name                      string `json:"name"`
	Description               string `json:"description,omitempty"`
	Location                  string `json:"location,omitempty"`
	Kind                      string `json:"kind"`
	MaxPeople                 *int   `json:"max_people,omitempty"`
	ProhibitionOfCancellation *bool  `json:"prohibition_of_cancellation,omitempty"`
	CampusIDs                 []int  `json:"campus_ids"`
	CursusIDs                 []int  `json:"cursus_ids"`
	CreatedAt                 string `json:"created_at"`
	UpdatedAt                 string `json:"updated_at"`
}

// ExamProject describes a project available during an exam.
type ExamProject struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// ExamPayload is the body of an exam webhook.
type ExamPayload struct {
	ID        int           `json:"id"`
	BeginAt   string        `json:"begin_at"`
	EndAt     string        `json:"end_at"`
	Location  string        `json:"location,omitempty"`
	IPRange   string        `json:"ip_range,omitempty"`
	MaxPeople *int          `json:"max_people,omitempty"`
	Visible   *bool         `json:"visible,omitempty"`
	Name      string        `json:"name"`
	CampusID  int           `json:"campus_id"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
	Projects  []ExamProject `json:"projects,omitempty"`
}
