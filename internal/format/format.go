// Package format turns intra payloads into Telegram messages. All functions
// are pure; output uses Telegram HTML parse mode (bold, code, links) and the
// sink must be called with that mode enabled.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/jgengo/intra-events-telegram/internal/intra"
)

// intraTimeLayout is the fixed timestamp format used by the intra platform.
const intraTimeLayout = "2006-01-02 15:04:05 UTC"

// displayZone is the campus-local zone. The intra platform sends UTC; the
// channel audience is UTC+2. Fixed offset, no DST table: during part of the
// year displayed times drift by an hour, matching the upstream behavior.
var displayZone = time.FixedZone("UTC+2", 2*60*60)

const (
	eventURLFormat = "https://profile.intra.42.fr/events/%d"
	examURLFormat  = "https://profile.intra.42.fr/exams/%d"
)

// Schedule renders "Monday, January 02 at 15:04 (2h 30m)" from the begin/end
// timestamps, converted to the display zone. On any parse failure it falls
// back to the raw strings joined by " - "; a broken timestamp must never
// abort a notification.
func Schedule(beginAt, endAt string) string {
	begin, err := time.Parse(intraTimeLayout, beginAt)
	if err != nil {
		return beginAt + " - " + endAt
	}
	end, err := time.Parse(intraTimeLayout, endAt)
	if err != nil {
		return beginAt + " - " + endAt
	}

	local := begin.In(displayZone)
	return fmt.Sprintf("%s at %s (%s)",
		local.Format("Monday, January 02"),
		local.Format("15:04"),
		Duration(end.Sub(begin)),
	)
}

// Duration renders a duration as "{h}h {m}m", omitting zero components.
// A zero duration renders as "0m".
func Duration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// escape neutralizes angle brackets so user-supplied text cannot inject
// markup into the rendered message.
func escape(s string) string {
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}

// EventCreated builds the announcement for a newly created event.
func EventCreated(e *intra.EventPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>", e.Name)

	if e.BeginAt != "" && e.EndAt != "" {
		fmt.Fprintf(&b, "\n\n📅    %s", Schedule(e.BeginAt, e.EndAt))
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "\n📍    %s", e.Location)
	}
	if e.MaxPeople != nil {
		fmt.Fprintf(&b, "\n👥    Max <b>%d people</b>", *e.MaxPeople)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, "\n\n<code>%s</code>", escape(e.Description))
	}

	fmt.Fprintf(&b, "\n\n&gt;&gt;&gt; <a href='"+eventURLFormat+"'>Register</a> &lt;&lt;&lt;", e.ID)
	return b.String()
}

// EventCancelled builds the notice for a destroyed event. It emphasizes the
// cancellation instead of inviting registration.
func EventCancelled(e *intra.EventPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌    <b>%s</b> has been cancelled.", e.Name)

	if e.BeginAt != "" && e.EndAt != "" {
		fmt.Fprintf(&b, "\n\n📅    Was scheduled for %s", Schedule(e.BeginAt, e.EndAt))
	}
	if e.Location != "" {
		fmt.Fprintf(&b, "\n📍    %s", e.Location)
	}
	return b.String()
}

// ExamCreated builds the announcement for a newly created exam.
func ExamCreated(x *intra.ExamPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>", x.Name)

	if x.BeginAt != "" && x.EndAt != "" {
		fmt.Fprintf(&b, "\n\n📅    %s", Schedule(x.BeginAt, x.EndAt))
	}
	if x.Location != "" {
		fmt.Fprintf(&b, "\n📍    %s", x.Location)
	}
	if x.MaxPeople != nil {
		fmt.Fprintf(&b, "\n👥    Max <b>%d people</b>", *x.MaxPeople)
	}
	if len(x.Projects) > 0 {
		names := make([]string, len(x.Projects))
		for i, p := range x.Projects {
			names[i] = p.Name
		}
		fmt.Fprintf(&b, "\n📚    Projects: %s", escape(strings.Join(names, ", ")))
	}

	fmt.Fprintf(&b, "\n\n&gt;&gt;&gt; <a href='"+examURLFormat+"'>Register</a> &lt;&lt;&lt;", x.ID)
	return b.String()
}
