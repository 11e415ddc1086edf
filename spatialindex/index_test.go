package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topola/geom"
)

func TestIndex_InsertQueryRemove(t *testing.T) {
	idx := New()
	idx.Insert(1, geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	idx.Insert(2, geom.Rect{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6})

	require.Equal(t, 2, idx.Len())

	hits := idx.Query(geom.Rect{MinX: -1, MinY: -1, MaxX: 2, MaxY: 2})
	require.Equal(t, []ID{1}, hits)

	require.NoError(t, idx.Remove(1))
	require.ErrorIs(t, idx.Remove(1), ErrUnknownID)

	hits = idx.Query(geom.Rect{MinX: -1, MinY: -1, MaxX: 2, MaxY: 2})
	require.Empty(t, hits)
}

func TestIndex_Update(t *testing.T) {
	idx := New()
	idx.Insert(1, geom.Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1})
	require.NoError(t, idx.Update(1, geom.Rect{MinX: 10, MinY: 10, MaxX: 11, MaxY: 11}))

	require.Empty(t, idx.Query(geom.Rect{MinX: -1, MinY: -1, MaxX: 2, MaxY: 2}))
	require.Equal(t, []ID{1}, idx.Query(geom.Rect{MinX: 9, MinY: 9, MaxX: 12, MaxY: 12}))

	require.ErrorIs(t, idx.Update(2, geom.Rect{}), ErrUnknownID)
}

func TestIndex_BulkLoadAndNearestK(t *testing.T) {
	boxes := map[ID]geom.Rect{
		1: {MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
		2: {MinX: 10, MinY: 0, MaxX: 11, MaxY: 1},
		3: {MinX: 20, MinY: 0, MaxX: 21, MaxY: 1},
	}
	idx := BulkLoad(boxes)
	require.Equal(t, 3, idx.Len())

	nearest := idx.NearestK(geom.Point{X: 0, Y: 0}, 2)
	require.Len(t, nearest, 2)
	require.Equal(t, ID(1), nearest[0])
}
