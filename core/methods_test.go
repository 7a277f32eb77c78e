// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/core"
)

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "re-adding is a no-op")
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edge is mirrored")
}

func TestAddEdge_AutoVerticesAndIDs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	id1, err := g.AddEdge("X", "Y", 7)
	require.NoError(t, err)
	id2, err := g.AddEdge("Y", "Z", 2)
	require.NoError(t, err)

	assert.Equal(t, "e1", id1)
	assert.Equal(t, "e2", id2)
	assert.Equal(t, []string{"X", "Y", "Z"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("X", "Y"))
	assert.False(t, g.HasEdge("Y", "X"), "directed edge is one-way")
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, to := range []string{"z", "a", "m"} {
		_, err := g.AddEdge("src", to, 0)
		require.NoError(t, err)
	}

	ids, err := g.NeighborIDs("src")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, ids)

	in, err := g.InNeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, in)

	_, err = g.Neighbors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_UndirectedOther(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	edges, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "A", edges[0].Other("B"))
	assert.Equal(t, "B", edges[0].Other("A"))
}

func TestMultiEdgesAndLabels(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("DDD", "DDD", 0, core.WithEdgeLabel("L"))
	require.NoError(t, err)
	_, err = g.AddEdge("DDD", "DDD", 0, core.WithEdgeLabel("R"))
	require.NoError(t, err)

	between, err := g.Neighbors("DDD")
	require.NoError(t, err)
	require.Len(t, between, 2)
	assert.Equal(t, "L", between[0].Label)
	assert.Equal(t, "R", between[1].Label)

	ids, err := g.NeighborIDs("DDD")
	require.NoError(t, err)
	assert.Equal(t, []string{"DDD"}, ids, "parallel loops collapse to one neighbor")
}

func TestEdges_Order(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("u", "v", 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID, "sequence order, not lexical")
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithDirected(true))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = g.AddEdge("a", "b", 0)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, g.EdgeCount())
	out, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Len(t, out, 800)
}
