package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	now := p.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, p.Since(now), core.Duration(0))

	ctx, cancel := p.WithTimeout(context.Background(), 50*core.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
}

func TestLocalTimeProvider(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	p := NewLocalTimeProvider(loc)
	assert.Equal(t, loc, p.Now().Location())
}
