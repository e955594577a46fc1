package logbuffer

import (
	"context"
	"slices"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
)

// Factory creates scopes and loggers that share one set of sinks and defaults.
// Hosts build one Factory at startup and one Scope per unit of work.
type Factory struct {
	cacheSize int
	settings  config.SettingsSource
	options   []Option
}

// NewFactory creates a factory. settings may be nil, in which case loggers keep
// the defaults carried by opts.
func NewFactory(cacheSize int, settings config.SettingsSource, opts ...Option) *Factory {
	return &Factory{
		cacheSize: cacheSize,
		settings:  settings,
		options:   opts,
	}
}

// NewScope starts a unit of work bounded at the factory's cache size
func (f *Factory) NewScope(ctx context.Context) (*Scope, error) {
	return NewScopeWithCapacity(ctx, f.cacheSize)
}

// Logger returns a logger for contextName writing into scope. When the factory has
// a settings source, the settings for contextName are read and applied.
func (f *Factory) Logger(ctx context.Context, scope *Scope, contextName string, extra ...Option) (*Logger, error) {
	opts := append(slices.Clone(f.options), extra...)
	if f.settings == nil {
		return New(scope, contextName, opts...), nil
	}
	return NewFromSettings(ctx, scope, contextName, f.settings, opts...)
}
