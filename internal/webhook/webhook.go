// Package webhook authenticates inbound intra webhook requests. Each
// resource kind (event, exam) is its own pipeline with its own shared
// secret and expected model literal; they share only the parsing logic.
package webhook

import (
	"errors"
	"fmt"
)

// Headers carried by every intra webhook request.
const (
	HeaderSecret   = "X-Secret"
	HeaderModel    = "X-Model"
	HeaderEvent    = "X-Event"
	HeaderDelivery = "X-Delivery"
)

// DeliveryUnknown is the placeholder used when X-Delivery is absent.
const DeliveryUnknown = "N/A"

// Event is the closed set of webhook event variants, shared across
// resource kinds. Handlers decide which variants are meaningful.
type Event string

const (
	EventCreate  Event = "create"
	EventDestroy Event = "destroy"
)

// ParseEvent maps a header value onto the Event set. Matching is exact and
// case-sensitive; anything outside the set is an error, never silently mapped.
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventCreate:
		return EventCreate, nil
	case EventDestroy:
		return EventDestroy, nil
	}
	return "", fmt.Errorf("unrecognized webhook event %q", s)
}

// Kind identifies which domain object a webhook concerns.
type Kind string

const (
	KindEvent Kind = "event"
	KindExam  Kind = "exam"
)

// Authentication failures, classified for HTTP status mapping.
var (
	ErrUnauthorized = errors.New("invalid webhook secret")
	ErrBadModel     = errors.New("unexpected model header")
	ErrBadEvent     = errors.New("unrecognized event header")
	ErrUnknownKind  = errors.New("unknown resource kind")
)

// Delivery is the authenticated result of one webhook request: the parsed
// event variant and the caller-supplied correlation id.
type Delivery struct {
	Event Event
	ID    string
}
