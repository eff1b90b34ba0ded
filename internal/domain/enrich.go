package domain

import "time"

// IDGenerator mints a fresh, globally-unique token on every call.
type IDGenerator func() string

// Clock returns the current time as a formatted string. Injectable so tests
// can pin timestamps.
type Clock func() string

// RFC3339Clock is the default clock.
func RFC3339Clock() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// draft carries a freshly constructed attribute bag through the enrichment
// pipeline. Decorators never mutate the bag they receive; they return a new
// draft value with one more derived field set.
type draft struct {
	attrs     map[string]any
	id        string
	modelName string
	eventName string
	timeKey   string
	timeVal   string
}

type decorator func(draft) draft

// addID stamps a generated unique identifier.
func addID(gen IDGenerator) decorator {
	return func(d draft) draft {
		d.id = gen()
		return d
	}
}

// addModelName echoes the canonical model-type name onto the draft.
func addModelName(name string) decorator {
	return func(d draft) draft {
		d.modelName = name
		return d
	}
}

// addEventName stamps the deterministic event name for the pair.
func addEventName(t EventType, name string) decorator {
	return func(d draft) draft {
		d.eventName = EventName(t, name)
		return d
	}
}

// addTimestamp stamps the clock reading under "<eventType>Time". For models
// no event type is in play and the key defaults to "createTime".
func addTimestamp(clock Clock, t EventType) decorator {
	return func(d draft) draft {
		d.timeKey = t.timeKey()
		d.timeVal = clock()
		return d
	}
}

func runPipeline(d draft, decorators ...decorator) draft {
	for _, dec := range decorators {
		d = dec(d)
	}
	return d
}

// sealedAttrs merges the constructor's bag with the stamped timestamp into a
// fresh map. The source bag is left untouched.
func (d draft) sealedAttrs() map[string]any {
	out := make(map[string]any, len(d.attrs)+1)
	for k, v := range d.attrs {
		out[k] = v
	}
	if d.timeKey != "" {
		out[d.timeKey] = d.timeVal
	}
	return out
}

// NewModel runs the model enrichment pipeline over a constructor's attribute
// bag and seals the result. modelName must already be canonical.
func NewModel(gen IDGenerator, clock Clock, modelName string, attrs map[string]any) Model {
	d := runPipeline(draft{attrs: attrs},
		addID(gen),
		addModelName(modelName),
		addTimestamp(clock, EventCreate),
	)
	return Model{id: d.id, modelName: d.modelName, attrs: d.sealedAttrs()}
}

// NewEvent runs the event enrichment pipeline over a constructor's attribute
// bag and seals the result. modelName must already be canonical.
func NewEvent(gen IDGenerator, clock Clock, t EventType, modelName string, attrs map[string]any) Event {
	d := runPipeline(draft{attrs: attrs},
		addID(gen),
		addModelName(modelName),
		addEventName(t, modelName),
		addTimestamp(clock, t),
	)
	return Event{id: d.id, modelName: d.modelName, eventName: d.eventName, attrs: d.sealedAttrs()}
}
