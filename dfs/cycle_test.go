package dfs_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkvasnikov/hydrocarbon/core"
	"github.com/dkvasnikov/hydrocarbon/dfs"
)

// TestDetectCycles_NilGraph verifies DetectCycles handles nil input without error.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err) // no error when graph is nil
	assert.False(t, has)   // should indicate no cycle
	assert.Nil(t, cycles)  // cycles slice should be nil
}

// TestDetectCycles_NoCycle ensures a simple tree-shaped graph reports no cycles.
func TestDetectCycles_NoCycle(t *testing.T) {
	g := core.NewGraph()
	// Build a tree:
	// A - B - C - G
	//     |
	//     D - E - F
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("B", "D")
	_, _ = g.AddEdge("C", "G")
	_, _ = g.AddEdge("D", "E")
	_, _ = g.AddEdge("E", "F")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)  // neighbor lookups should not fail
	assert.False(t, has)    // no cycle expected
	assert.Empty(t, cycles) // cycles slice should be empty
}

// TestDetectCycles_ThreeNodeCycle covers a 3-node cycle.
func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	g := core.NewGraph()
	// A--B--C--A forms a triangle
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t,
		[][]string{{"A", "B", "C", "A"}},
		cycles,
	)
}

// TestDetectCycles_FourNodeCycle covers a 4-node cycle.
func TestDetectCycles_FourNodeCycle(t *testing.T) {
	g := core.NewGraph()
	// V--W--X--Y--Z--W forms a 4-node cycle
	_, _ = g.AddEdge("V", "W")
	_, _ = g.AddEdge("W", "X")
	_, _ = g.AddEdge("X", "Y")
	_, _ = g.AddEdge("Y", "Z")
	_, _ = g.AddEdge("Z", "W")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	// The canonical cycle should start at W
	assert.Equal(t,
		[][]string{{"W", "X", "Y", "Z", "W"}},
		cycles,
	)
}

// TestDetectCycles_MultipleDisjointCycles covers two distinct cycles in the same graph.
func TestDetectCycles_MultipleDisjointCycles(t *testing.T) {
	g := core.NewGraph()
	// three-node cycle A--B--C--A
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	// four-node cycle W--X--Y--Z--W
	_, _ = g.AddEdge("W", "X")
	_, _ = g.AddEdge("X", "Y")
	_, _ = g.AddEdge("Y", "Z")
	_, _ = g.AddEdge("Z", "W")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	// We expect two cycles: ["A","B","C","A"] and ["W","X","Y","Z","W"], in any order
	assert.ElementsMatch(t,
		[][]string{{"A", "B", "C", "A"}, {"W", "X", "Y", "Z", "W"}},
		cycles,
	)
	assert.Len(t, cycles, 2)
}

// TestDetectCycles_MultipleLarge verifies detection of multiple disjoint cycles
// of different lengths, connected by a bridge edge, plus isolated vertices.
func TestDetectCycles_MultipleLarge(t *testing.T) {
	g := core.NewGraph()
	// Cycle1: A-B-C-D-E-A
	cycle1 := []string{"A", "B", "C", "D", "E", "A"}
	for i := 0; i < len(cycle1)-1; i++ {
		_, _ = g.AddEdge(cycle1[i], cycle1[i+1])
	}
	// Cycle2: F-G-H-F
	cycle2 := []string{"F", "G", "H", "F"}
	for i := 0; i < len(cycle2)-1; i++ {
		_, _ = g.AddEdge(cycle2[i], cycle2[i+1])
	}
	// Connect cycles via a bridge and add extra vertices with no new edges
	_, _ = g.AddEdge("E", "F")
	_ = g.AddVertex("I")
	_ = g.AddVertex("J")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has, "expected at least one cycle")

	// Convert found cycles to comma-joined signatures for robust comparison
	sigs := make([]string, len(cycles))
	for i, c := range cycles {
		sigs[i] = strings.Join(c, ",")
	}
	// Expected signatures (canonical rotations)
	exp := []string{strings.Join(cycle1, ","), strings.Join(cycle2, ",")}
	assert.ElementsMatch(t, exp, sigs)
	assert.Len(t, cycles, 2)
}

// TestDetectCycles_ThreeNodeCycleLen is a focused length-and-signature check,
// distinct from TestDetectCycles_ThreeNodeCycle's exact-value assertion.
func TestDetectCycles_ThreeNodeCycleLen(t *testing.T) {
	g := core.NewGraph()
	// Triangle A--B--C--A
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Len(t, cycles, 1)
	assert.Equal(t, []string{"A", "B", "C", "A"}, cycles[0])
}

// TestDetectCycles_MultipleCycleLengths verifies detection of two disjoint
// cycles of different lengths (4-node and 5-node) in the same graph.
func TestDetectCycles_MultipleCycleLengths(t *testing.T) {
	g := core.NewGraph()
	// Cycle X: 4-node W--X--Y--Z--W
	cyc4 := []string{"W", "X", "Y", "Z", "W"}
	for i := 0; i < len(cyc4)-1; i++ {
		_, _ = g.AddEdge(cyc4[i], cyc4[i+1])
	}
	// Cycle Y: 5-node P--Q--R--S--T--P
	cyc5 := []string{"P", "Q", "R", "S", "T", "P"}
	for i := 0; i < len(cyc5)-1; i++ {
		_, _ = g.AddEdge(cyc5[i], cyc5[i+1])
	}

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)

	// Build a set of expected comma-joined cycle signatures
	exp := map[string]struct{}{}
	exp[strings.Join(cyc4, ",")] = struct{}{}
	exp[strings.Join(cyc5, ",")] = struct{}{}

	// Ensure exactly two cycles were found, each matching one expected signature
	assert.Len(t, cycles, 2)
	for _, c := range cycles {
		sig := strings.Join(c, ",")
		assert.Contains(t, exp, sig)
	}
}
