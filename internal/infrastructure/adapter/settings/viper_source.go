package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/config"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ViperSource reads logger settings from a viper tree:
//
//	logBuffer:
//	  cacheSize: 100
//	  debugThreshold: INFO
//	  reportingThreshold: FATAL
//	  contexts:
//	    billing:
//	      reportingThreshold: ERROR
//
// Values under contexts.<name> win over the top-level ones.
type ViperSource struct {
	v    *viper.Viper
	root string
}

// NewViperSource creates a settings source rooted at key root, e.g. "logBuffer"
func NewViperSource(v *viper.Viper, root string) *ViperSource {
	return &ViperSource{v: v, root: root}
}

// LoggerSettings implements config.SettingsSource
func (s *ViperSource) LoggerSettings(_ context.Context, contextName string) (config.LoggerSettings, error) {
	var settings config.LoggerSettings

	scoped := s.key("contexts", strings.ToLower(contextName))
	for _, prefix := range []string{s.root, scoped} {
		if err := s.read(prefix, &settings); err != nil {
			return config.LoggerSettings{}, err
		}
	}
	return settings, nil
}

func (s *ViperSource) read(prefix string, settings *config.LoggerSettings) error {
	if key := s.join(prefix, "cacheSize"); s.v.IsSet(key) {
		size, err := cast.ToIntE(s.v.Get(key))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		settings.CacheSize = &size
	}
	if key := s.join(prefix, "debugThreshold"); s.v.IsSet(key) {
		settings.DebugThreshold = cast.ToString(s.v.Get(key))
	}
	if key := s.join(prefix, "reportingThreshold"); s.v.IsSet(key) {
		settings.ReportingThreshold = cast.ToString(s.v.Get(key))
	}
	return nil
}

func (s *ViperSource) key(parts ...string) string {
	return s.join(s.root, strings.Join(parts, "."))
}

func (s *ViperSource) join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
