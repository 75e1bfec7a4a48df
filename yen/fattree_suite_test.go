package yen_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dcntopo/builder"
	"github.com/katalvlaran/dcntopo/core"
	"github.com/katalvlaran/dcntopo/yen"
)

// FatTreeSuite checks path diversity on a k=4 fat-tree, where the number of
// equal-length alternatives follows from the tier layout.
type FatTreeSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *FatTreeSuite) SetupSuite() {
	g, err := builder.NewFatTree(4)
	require.NoError(s.T(), err)
	s.g = g
}

func (s *FatTreeSuite) host(label string) core.NodeID {
	id, ok := s.g.Lookup(label)
	require.True(s.T(), ok, "missing %s", label)

	return id
}

// countHops returns how many leading paths have exactly hops links.
func countHops(paths []yen.Path, hops int) int {
	n := 0
	for _, p := range paths {
		if p.Hops() != hops {
			break
		}
		n++
	}

	return n
}

// TestSameEdgeSwitch: a single simple path through the shared edge switch.
func (s *FatTreeSuite) TestSameEdgeSwitch() {
	paths, err := yen.KShortestPaths(s.g, s.host("h0"), s.host("h1"), 8)
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, 1)
	require.Equal(s.T(), 2, paths[0].Hops())
}

// TestSamePod: one 4-hop path per aggregation switch of the pod.
func (s *FatTreeSuite) TestSamePod() {
	paths, err := yen.KShortestPaths(s.g, s.host("h0"), s.host("h2"), 8)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, countHops(paths, 4))
	require.Greater(s.T(), paths[len(paths)-1].Hops(), 4)
}

// TestAcrossPods: one 6-hop path per core switch.
func (s *FatTreeSuite) TestAcrossPods() {
	paths, err := yen.KShortestPaths(s.g, s.host("h0"), s.host("h15"), 8)
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, 8)
	require.Equal(s.T(), 4, countHops(paths, 6))
	for _, p := range paths[4:] {
		require.Greater(s.T(), p.Hops(), 6)
	}
}

func TestFatTreeSuite(t *testing.T) {
	suite.Run(t, new(FatTreeSuite))
}
