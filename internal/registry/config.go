package registry

import (
	"github.com/google/uuid"

	"macrolib/internal/domain"
)

// Config carries the injectable collaborators of a Registry. Zero values mean
// "use the package default".
type Config struct {
	// IDGenerator mints unique identifiers for models and events.
	// Default: uuid.NewString.
	IDGenerator domain.IDGenerator
	// Clock produces the timestamp strings stamped by the pipeline.
	// Default: UTC RFC3339Nano.
	Clock domain.Clock
}

func (c Config) withDefaults() Config {
	if c.IDGenerator == nil {
		c.IDGenerator = uuid.NewString
	}
	if c.Clock == nil {
		c.Clock = domain.RFC3339Clock
	}
	return c
}
