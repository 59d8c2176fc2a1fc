// Package numbering issues tracking and manifest numbers from a snowflake node.
package numbering

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const (
	TrackingPrefix = "CS-"
	ManifestPrefix = "MF-"
)

// SnowflakeGenerator produces time-ordered, node-unique numbers. Collisions
// across nodes sharing an id are still possible, so callers check persistence.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NextTrackingNumber() string {
	return TrackingPrefix + strings.ToUpper(g.node.Generate().Base36())
}

func (g *SnowflakeGenerator) NextManifestNumber() string {
	return ManifestPrefix + strings.ToUpper(g.node.Generate().Base36())
}
