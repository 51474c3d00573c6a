package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densepath/matrix"
)

func TestNewCost_InvalidOrder(t *testing.T) {
	_, err := matrix.NewCost(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewCost(-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewCost_OrderBound(t *testing.T) {
	// Orders whose square overflows int must fail instead of panicking in make.
	for _, n := range []int{matrix.MaxOrder + 1, math.MaxInt32, math.MaxInt} {
		_, err := matrix.NewCost(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=%d", n)
	}
}

func TestCost_SetEdgeAndLookup(t *testing.T) {
	m, err := matrix.NewCost(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Order())

	require.NoError(t, m.SetEdge(0, 1, 4))
	require.NoError(t, m.SetEdge(1, 2, 0)) // zero weight is a real edge
	require.Equal(t, 2, m.EdgeCount())

	w, ok, err := m.Edge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(4), w)

	w, ok, err = m.Edge(1, 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(0), w)

	_, ok, err = m.Edge(1, 0)
	require.NoError(t, err)
	require.False(t, ok, "edges are directed")

	// Overwriting does not double count.
	require.NoError(t, m.SetEdge(0, 1, 9))
	require.Equal(t, 2, m.EdgeCount())
}

func TestCost_RemoveEdge(t *testing.T) {
	m, _ := matrix.NewCost(2)
	require.NoError(t, m.SetEdge(0, 1, 5))
	require.NoError(t, m.RemoveEdge(0, 1))
	require.NoError(t, m.RemoveEdge(0, 1))
	require.Equal(t, 0, m.EdgeCount())

	_, ok, err := m.Edge(0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCost_Errors(t *testing.T) {
	m, _ := matrix.NewCost(2)
	require.ErrorIs(t, m.SetEdge(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetEdge(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetEdge(0, 1, -1), matrix.ErrNegativeWeight)
	require.ErrorIs(t, m.RemoveEdge(5, 5), matrix.ErrOutOfRange)
	_, _, err := m.Edge(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Neighbors(2, func(int, int64) {}), matrix.ErrOutOfRange)

	var nilM *matrix.Cost
	require.Equal(t, 0, nilM.Order())
	require.ErrorIs(t, nilM.SetEdge(0, 0, 1), matrix.ErrNilMatrix)
}

func TestCost_NeighborsAscending(t *testing.T) {
	m, _ := matrix.NewCost(4)
	require.NoError(t, m.SetEdge(1, 3, 7))
	require.NoError(t, m.SetEdge(1, 0, 2))
	require.NoError(t, m.SetEdge(1, 2, 0))

	var cols []int
	var weights []int64
	require.NoError(t, m.Neighbors(1, func(v int, w int64) {
		cols = append(cols, v)
		weights = append(weights, w)
	}))
	require.Equal(t, []int{0, 2, 3}, cols)
	require.Equal(t, []int64{2, 0, 7}, weights)
}

func TestFromDense_LegacySentinel(t *testing.T) {
	m, err := matrix.FromDense([][]int64{
		{0, 4, -1},
		{0, 0, 2},
		{3, 0, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.EdgeCount())

	_, ok, _ := m.Edge(0, 2)
	require.False(t, ok, "negative entries mean no edge")
	_, ok, _ = m.Edge(1, 1)
	require.False(t, ok, "zero entries mean no edge")
}

func TestFromDense_Errors(t *testing.T) {
	_, err := matrix.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromDense([][]int64{{0, 1}, {0}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestCost_String(t *testing.T) {
	m, _ := matrix.NewCost(2)
	require.NoError(t, m.SetEdge(0, 1, 12))
	require.NoError(t, m.SetEdge(1, 1, 0))
	require.Equal(t, ". 12\n. 0\n", m.String())
}
