// Package logging adapts pkg/logger to the port.Logger interface.
package logging

import (
	"context"

	"github.com/hapkiduki/shipping-console/internal/application/port"
	"github.com/hapkiduki/shipping-console/pkg/logger"
)

// Adapter adapts the logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

// NewAdapter wraps l.
func NewAdapter(l *logger.Logger) *Adapter {
	return &Adapter{l}
}

// Nop returns a port.Logger that discards everything.
func Nop() port.Logger {
	return &Adapter{logger.NewNop()}
}

var _ port.Logger = (*Adapter)(nil)

// With implements port.Logger.
func (a *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{a.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (a *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{a.Logger.WithContext(ctx)}
}
