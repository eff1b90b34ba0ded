package domain

// Event is a sealed record of a lifecycle change: identity, the deterministic
// event name listeners subscribe by, the model-type name, and the attribute
// bag its factory produced plus the pipeline's timestamp. Immutable the same
// way Model is.
type Event struct {
	id        string
	modelName string
	eventName string
	attrs     map[string]any
}

// ID returns the generated unique identifier.
func (e Event) ID() string { return e.id }

// EventName returns the canonical event name, e.g. CREATEORDER.
func (e Event) EventName() string { return e.eventName }

// ModelName returns the canonical model-type name the event concerns.
func (e Event) ModelName() string { return e.modelName }

// Attr returns one attribute by key, timestamps included (e.g. "updateTime").
func (e Event) Attr(key string) (any, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// Attrs returns a copy of the attribute bag.
func (e Event) Attrs() map[string]any {
	out := make(map[string]any, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}
	return out
}

// IsZero reports whether the event was never produced by the pipeline.
func (e Event) IsZero() bool { return e.id == "" && e.eventName == "" }
