package migration

import (
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsRow(t *testing.T) {
	t.Run("All values", func(t *testing.T) {
		row := defaultSettingsRow(DefaultSettings{CacheSize: 100, DebugThreshold: "INFO", ReportingThreshold: "FATAL"})

		assert.Equal(t, model.DefaultSettingsContext, row.Context)
		require.NotNil(t, row.CacheSize)
		assert.Equal(t, 100, *row.CacheSize)
		require.NotNil(t, row.DebugThreshold)
		assert.Equal(t, "INFO", *row.DebugThreshold)
		require.NotNil(t, row.ReportingThreshold)
		assert.Equal(t, "FATAL", *row.ReportingThreshold)
	})

	t.Run("Empty values stay null", func(t *testing.T) {
		row := defaultSettingsRow(DefaultSettings{})

		assert.Nil(t, row.CacheSize)
		assert.Nil(t, row.DebugThreshold)
		assert.Nil(t, row.ReportingThreshold)
	})
}
