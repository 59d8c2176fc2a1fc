package numbering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeGenerator(t *testing.T) {
	g, err := NewSnowflakeGenerator(1)
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for range 1000 {
		n := g.NextTrackingNumber()
		assert.True(t, strings.HasPrefix(n, TrackingPrefix))
		assert.Equal(t, strings.ToUpper(n), n)
		_, dup := seen[n]
		require.False(t, dup, "duplicate %s", n)
		seen[n] = struct{}{}
	}

	assert.True(t, strings.HasPrefix(g.NextManifestNumber(), ManifestPrefix))
}

func TestSnowflakeGenerator_InvalidNode(t *testing.T) {
	_, err := NewSnowflakeGenerator(-1)
	assert.Error(t, err)
}
