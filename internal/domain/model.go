package domain

// Model is a sealed domain object: identity, canonical type name, and the
// attribute bag its factory produced plus the pipeline's timestamp. All
// fields are unexported and accessors copy, so a Model handed to a caller
// cannot be changed afterwards.
type Model struct {
	id        string
	modelName string
	attrs     map[string]any
}

// ID returns the generated unique identifier.
func (m Model) ID() string { return m.id }

// ModelName returns the canonical (uppercase) model-type name.
func (m Model) ModelName() string { return m.modelName }

// Attr returns one attribute by key. Timestamps are read this way too, under
// their dynamic key (e.g. "createTime").
func (m Model) Attr(key string) (any, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// Attrs returns a copy of the attribute bag. Mutating the copy does not
// affect the model.
func (m Model) Attrs() map[string]any {
	out := make(map[string]any, len(m.attrs))
	for k, v := range m.attrs {
		out[k] = v
	}
	return out
}

// IsZero reports whether the model was never produced by the pipeline.
func (m Model) IsZero() bool { return m.id == "" && m.modelName == "" }

// Apply returns a new Model with the given attribute changes merged in and an
// updateTime stamp. Identity and type name carry over; the receiver is left
// untouched.
func (m Model) Apply(clock Clock, changes map[string]any) Model {
	attrs := m.Attrs()
	for k, v := range changes {
		attrs[k] = v
	}
	attrs[EventUpdate.timeKey()] = clock()
	return Model{id: m.id, modelName: m.modelName, attrs: attrs}
}

// ModelRecord is the serializable form of a Model, used by repository
// adapters that persist outside the process.
type ModelRecord struct {
	ID        string         `json:"id"`
	ModelName string         `json:"modelName"`
	Attrs     map[string]any `json:"attrs"`
}

// Record snapshots the model into its serializable form.
func (m Model) Record() ModelRecord {
	return ModelRecord{ID: m.id, ModelName: m.modelName, Attrs: m.Attrs()}
}

// ModelFromRecord rebuilds a sealed Model from its serializable form.
func ModelFromRecord(r ModelRecord) Model {
	attrs := make(map[string]any, len(r.Attrs))
	for k, v := range r.Attrs {
		attrs[k] = v
	}
	return Model{id: r.ID, modelName: r.ModelName, attrs: attrs}
}
