package domain

// invalidArgumentError signals a model-type name or event type that failed
// validation, for 400 mapping.
type invalidArgumentError struct{ msg string }

func (e invalidArgumentError) Error() string { return "invalid argument: " + e.msg }

// ErrInvalidArgument constructs an invalidArgumentError.
func ErrInvalidArgument(msg string) error { return invalidArgumentError{msg: msg} }

// IsInvalidArgument reports whether err indicates failed input validation.
func IsInvalidArgument(err error) bool {
	_, ok := err.(invalidArgumentError)
	return ok
}

// unregisteredModelError signals a create call for a model type with no
// registered factory.
type unregisteredModelError struct{ name string }

func (e unregisteredModelError) Error() string { return "unregistered model type: " + e.name }

// ErrUnregisteredModel returns an error for a model type with no factory.
func ErrUnregisteredModel(name string) error { return unregisteredModelError{name: name} }

// IsUnregisteredModel reports whether err indicates a missing model factory.
func IsUnregisteredModel(err error) bool {
	_, ok := err.(unregisteredModelError)
	return ok
}

// unregisteredEventError signals a create call for an (event type, model type)
// pair with no registered factory.
type unregisteredEventError struct {
	eventType EventType
	name      string
}

func (e unregisteredEventError) Error() string {
	return "unregistered event factory: " + e.eventType.String() + " " + e.name
}

// ErrUnregisteredModelEvent returns an error for a pair with no event factory.
func ErrUnregisteredModelEvent(t EventType, name string) error {
	return unregisteredEventError{eventType: t, name: name}
}

// IsUnregisteredModelEvent reports whether err indicates a missing event factory.
func IsUnregisteredModelEvent(err error) bool {
	_, ok := err.(unregisteredEventError)
	return ok
}

// modelNotFoundError signals a repository miss for a model id, for 404 mapping.
type modelNotFoundError struct{ id string }

func (e modelNotFoundError) Error() string { return "model not found: " + e.id }

// ErrModelNotFound returns an error for a model id absent from the repository.
func ErrModelNotFound(id string) error { return modelNotFoundError{id: id} }

// IsModelNotFound reports whether err indicates a missing model id.
func IsModelNotFound(err error) bool {
	_, ok := err.(modelNotFoundError)
	return ok
}
