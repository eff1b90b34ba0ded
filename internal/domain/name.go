package domain

import "strings"

// CanonicalName validates and canonicalizes a model-type name. Names are
// case-insensitive identifiers; the canonical form is uppercase. An empty or
// blank name fails with the invalid-argument condition.
func CanonicalName(modelType string) (string, error) {
	name := strings.TrimSpace(modelType)
	if name == "" {
		return "", ErrInvalidArgument("model type name must be a non-empty string")
	}
	return strings.ToUpper(name), nil
}

// EventName computes the canonical name for an event of type t on the given
// model type: the uppercase event type concatenated with the uppercase model
// type, no separator (e.g. CREATEORDER). Listeners subscribe by this name, so
// it depends on nothing but the pair.
func EventName(t EventType, modelType string) string {
	return t.String() + strings.ToUpper(strings.TrimSpace(modelType))
}
