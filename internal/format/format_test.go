package format

import (
	"strings"
	"testing"
	"time"

	"github.com/jgengo/intra-events-telegram/internal/intra"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{2*time.Hour + 30*time.Minute, "2h 30m"},
		{90 * time.Minute, "1h 30m"},
		{2 * time.Hour, "2h"},
		{45 * time.Minute, "45m"},
		{0, "0m"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSchedule(t *testing.T) {
	// 10:00 UTC renders as 12:00 in the fixed UTC+2 display zone.
	got := Schedule("2024-01-01 10:00:00 UTC", "2024-01-01 12:30:00 UTC")
	want := "Monday, January 01 at 12:00 (2h 30m)"
	if got != want {
		t.Errorf("Schedule = %q, want %q", got, want)
	}
}

func TestSchedule_ZeroDuration(t *testing.T) {
	got := Schedule("2024-01-01 10:00:00 UTC", "2024-01-01 10:00:00 UTC")
	if !strings.HasSuffix(got, "(0m)") {
		t.Errorf("Schedule = %q, want 0m duration", got)
	}
}

func TestSchedule_MalformedFallsBack(t *testing.T) {
	tests := []struct {
		begin, end string
	}{
		{"not a date", "2024-01-01 12:30:00 UTC"},
		{"2024-01-01 10:00:00 UTC", "garbage"},
		{"2024-01-01T10:00:00Z", "2024-01-01T12:30:00Z"},
	}
	for _, tt := range tests {
		got := Schedule(tt.begin, tt.end)
		want := tt.begin + " - " + tt.end
		if got != want {
			t.Errorf("Schedule(%q, %q) = %q, want raw fallback %q", tt.begin, tt.end, got, want)
		}
	}
}

func TestEventCreated_FullPayload(t *testing.T) {
	maxPeople := 50
	e := &intra.EventPayload{
		ID:          1492,
		BeginAt:     "2024-01-01 10:00:00 UTC",
		EndAt:       "2024-01-01 12:30:00 UTC",
		Name:        "Piscine Discovery",
		Description: "Hands-on intro",
		Location:    "Cluster 1",
		Kind:        "pedago",
		MaxPeople:   &maxPeople,
	}

	msg := EventCreated(e)

	for _, want := range []string{
		"<b>Piscine Discovery</b>",
		"📅    Monday, January 01 at 12:00 (2h 30m)",
		"📍    Cluster 1",
		"👥    Max <b>50 people</b>",
		"<code>Hands-on intro</code>",
		"<a href='https://profile.intra.42.fr/events/1492'>Register</a>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestEventCreated_MinimalPayload(t *testing.T) {
	e := &intra.EventPayload{ID: 7, Name: "Standup"}
	msg := EventCreated(e)

	if strings.Contains(msg, "📅") || strings.Contains(msg, "📍") || strings.Contains(msg, "👥") || strings.Contains(msg, "<code>") {
		t.Errorf("minimal payload should omit optional lines:\n%s", msg)
	}
	if !strings.Contains(msg, "events/7") {
		t.Errorf("message missing registration link:\n%s", msg)
	}
}

func TestEventCreated_EscapesDescription(t *testing.T) {
	e := &intra.EventPayload{
		ID:          1,
		Name:        "XSS Night",
		Description: "<script>alert(1)</script>",
	}

	msg := EventCreated(e)

	if strings.Contains(msg, "<script>") {
		t.Errorf("description markup not escaped:\n%s", msg)
	}
	if !strings.Contains(msg, "<code>&lt;script&gt;alert(1)&lt;/script&gt;</code>") {
		t.Errorf("expected entity-escaped description:\n%s", msg)
	}
}

func TestEventCancelled(t *testing.T) {
	e := &intra.EventPayload{
		ID:      3,
		Name:    "Chess Club",
		BeginAt: "2024-01-01 10:00:00 UTC",
		EndAt:   "2024-01-01 11:00:00 UTC",
	}

	msg := EventCancelled(e)

	if !strings.Contains(msg, "<b>Chess Club</b> has been cancelled") {
		t.Errorf("missing cancellation line:\n%s", msg)
	}
	if strings.Contains(msg, "Register") {
		t.Errorf("cancellation message must not invite registration:\n%s", msg)
	}
	if !strings.Contains(msg, "Was scheduled for Monday, January 01 at 12:00 (1h)") {
		t.Errorf("missing original schedule:\n%s", msg)
	}
}

func TestExamCreated(t *testing.T) {
	maxPeople := 120
	x := &intra.ExamPayload{
		ID:        99,
		BeginAt:   "2024-03-15 17:00:00 UTC",
		EndAt:     "2024-03-15 20:00:00 UTC",
		Name:      "Exam Rank 02",
		Location:  "Cluster 2",
		MaxPeople: &maxPeople,
		CampusID:  13,
		Projects: []intra.ExamProject{
			{Name: "libft", ID: 1, Slug: "libft", URL: "https://projects.intra.42.fr/libft"},
			{Name: "get_next_line", ID: 2, Slug: "gnl", URL: "https://projects.intra.42.fr/gnl"},
		},
	}

	msg := ExamCreated(x)

	for _, want := range []string{
		"<b>Exam Rank 02</b>",
		"(3h)",
		"📍    Cluster 2",
		"👥    Max <b>120 people</b>",
		"📚    Projects: libft, get_next_line",
		"<a href='https://profile.intra.42.fr/exams/99'>Register</a>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
