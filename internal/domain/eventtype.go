package domain

import "strings"

// EventType identifies the lifecycle change an event describes. The set is
// closed: anything outside CREATE/UPDATE/DELETE is rejected at the boundary
// by ParseEventType.
type EventType uint8

const (
	// EventCreate marks the creation of a model. It is the zero value, so an
	// unspecified event type defaults to creation semantics.
	EventCreate EventType = iota
	// EventUpdate marks a change to an existing model.
	EventUpdate
	// EventDelete marks the removal of a model.
	EventDelete
)

// String returns the canonical uppercase form used in event names.
func (t EventType) String() string {
	switch t {
	case EventCreate:
		return "CREATE"
	case EventUpdate:
		return "UPDATE"
	case EventDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// timeKey returns the attribute key the pipeline stamps the timestamp under,
// e.g. "createTime" for CREATE.
func (t EventType) timeKey() string {
	return strings.ToLower(t.String()) + "Time"
}

// ParseEventType converts an external string into an EventType. Matching is
// case-insensitive; anything outside the closed set fails with the
// invalid-argument condition.
func ParseEventType(s string) (EventType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CREATE":
		return EventCreate, nil
	case "UPDATE":
		return EventUpdate, nil
	case "DELETE":
		return EventDelete, nil
	default:
		return EventCreate, ErrInvalidArgument("unknown event type: " + s)
	}
}
