package graphdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
)

func edgeTable(t *testing.T, prefix string, srcs, tgts []int64, wts []float64) table.Table {
	t.Helper()

	labels := make([]model.ID, len(srcs))
	for i := range labels {
		labels[i] = model.String(prefix + string(rune('0'+i)))
	}

	tbl, err := table.New(labels, map[string]table.Column{
		ColumnSource: table.IntColumn(srcs),
		ColumnTarget: table.IntColumn(tgts),
		ColumnWeight: table.FloatColumn(wts),
	})
	require.NoError(t, err)
	return tbl
}

// loopStore holds edges [(0,1,1.0), (1,2,2.0), (2,2,3.0)] over 3 nodes;
// the last edge is a self-loop.
func loopStore(t *testing.T, opts ...Option) *EdgeStore {
	t.Helper()

	store, err := NewEdgeStore(map[string]table.Table{
		"link": edgeTable(t, "e", []int64{0, 1, 2}, []int64{1, 2, 2}, []float64{1.0, 2.0, 3.0}),
	}, 3, opts...)
	require.NoError(t, err)
	return store
}

func TestRequiredColumns(t *testing.T) {
	tbl, err := table.New(model.Strings([]string{"e0"}), map[string]table.Column{
		ColumnSource: table.IntColumn([]int64{0}),
	})
	require.NoError(t, err)

	_, err = NewEdgeStore(map[string]table.Table{"link": tbl}, 2)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "link", missing.TypeName)
	assert.Equal(t, []string{"target", "weight"}, missing.Missing)
}

func TestRequiredColumnKinds(t *testing.T) {
	tbl, err := table.New(model.Strings([]string{"e0"}), map[string]table.Column{
		ColumnSource: table.IntColumn([]int64{0}),
		ColumnTarget: table.IntColumn([]int64{1}),
		ColumnWeight: table.IntColumn([]int64{1}), // wrong kind
	})
	require.NoError(t, err)

	_, err = NewEdgeStore(map[string]table.Table{"link": tbl}, 2)
	var kind *ColumnKindError
	require.ErrorAs(t, err, &kind)
	assert.Equal(t, ColumnWeight, kind.Column)
	assert.Equal(t, table.KindFloat, kind.Expected)
	assert.Equal(t, table.KindInt, kind.Actual)
}

func TestEndpointRange(t *testing.T) {
	_, err := NewEdgeStore(map[string]table.Table{
		"link": edgeTable(t, "e", []int64{0}, []int64{5}, []float64{1.0}),
	}, 3)

	var rangeErr *NodeILocRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, model.ILoc(5), rangeErr.ILoc)
	assert.Equal(t, 3, rangeErr.NumNodes)
}

func TestCachedEdgeColumns(t *testing.T) {
	store := loopStore(t)

	assert.Equal(t, []model.ILoc{0, 1, 2}, store.Sources())
	assert.Equal(t, []model.ILoc{1, 2, 2}, store.Targets())
	assert.Equal(t, []float64{1.0, 2.0, 3.0}, store.Weights())
	assert.Equal(t, 3, store.NumNodes())
}

func TestNeighbourILocs(t *testing.T) {
	store := loopStore(t)

	// Self-loops appear once in the undirected view, so node 2 sees
	// [1, 2], not [1, 2, 2].
	both, err := store.NeighbourILocs(2, "link", true, true)
	require.NoError(t, err)
	assert.Equal(t, []model.ILoc{1, 2}, both)

	ins, err := store.NeighbourILocs(2, "link", true, false)
	require.NoError(t, err)
	assert.Equal(t, []model.ILoc{1, 2}, ins)

	outs, err := store.NeighbourILocs(2, "link", false, true)
	require.NoError(t, err)
	assert.Equal(t, []model.ILoc{2}, outs)

	// Isolated direction: node 0 has no incoming edges but still owns
	// an (empty) entry.
	ins, err = store.NeighbourILocs(0, "link", true, false)
	require.NoError(t, err)
	assert.Empty(t, ins)
}

func TestNeighbourWeights(t *testing.T) {
	store := loopStore(t)

	ws, err := store.NeighbourWeights(2, "link", true, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0, 3.0}, ws)

	ws, err = store.NeighbourWeights(1, "link", true, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, ws)
}

func TestDegrees(t *testing.T) {
	store := loopStore(t)

	// The three views count a self-loop independently: once incoming,
	// once outgoing, once combined.
	ins, err := store.Degrees("link", true, false)
	require.NoError(t, err)
	assert.Equal(t, 2, ins.Degree(2))

	outs, err := store.Degrees("link", false, true)
	require.NoError(t, err)
	assert.Equal(t, 1, outs.Degree(2))

	both, err := store.Degrees("link", true, true)
	require.NoError(t, err)
	assert.Equal(t, 2, both.Degree(2))

	// Absent keys default to 0.
	assert.Equal(t, 0, ins.Degree(0))
	assert.Equal(t, 0, both.Degree(-1))
	assert.Equal(t, 0, both.Degree(999))
	assert.Equal(t, 3, both.Len())
}

func TestDegreesNonZero(t *testing.T) {
	store := loopStore(t)

	outs, err := store.Degrees("link", false, true)
	require.NoError(t, err)

	got := map[model.ILoc]int{}
	for n, d := range outs.NonZero() {
		got[n] = d
	}
	assert.Equal(t, map[model.ILoc]int{0: 1, 1: 1, 2: 1}, got)

	ins, err := store.Degrees("link", true, false)
	require.NoError(t, err)

	got = map[model.ILoc]int{}
	for n, d := range ins.NonZero() {
		got[n] = d
	}
	assert.Equal(t, map[model.ILoc]int{1: 1, 2: 2}, got)
}

func TestDirectionRequired(t *testing.T) {
	store := loopStore(t)

	_, err := store.Degrees("link", false, false)
	require.ErrorIs(t, err, ErrDirection)

	_, err = store.NeighbourILocs(0, "link", false, false)
	require.ErrorIs(t, err, ErrDirection)
}

func TestUnknownEdgeType(t *testing.T) {
	store := loopStore(t)

	_, err := store.Degrees("nope", true, true)
	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
}

func TestNeighbourNodeOutOfRange(t *testing.T) {
	store := loopStore(t)

	_, err := store.NeighbourILocs(99, "link", true, true)
	var rangeErr *NodeILocRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestMultipleEdgeTypes(t *testing.T) {
	store, err := NewEdgeStore(map[string]table.Table{
		"follows": edgeTable(t, "f", []int64{0, 1}, []int64{1, 0}, []float64{1.0, 1.0}),
		"likes":   edgeTable(t, "l", []int64{0}, []int64{2}, []float64{0.5}),
	}, 3)
	require.NoError(t, err)

	// Adjacency is per type: node 2 has a "likes" edge but no
	// "follows" edge.
	likes, err := store.NeighbourILocs(2, "likes", true, false)
	require.NoError(t, err)
	assert.Equal(t, []model.ILoc{0}, likes)

	follows, err := store.NeighbourILocs(2, "follows", true, false)
	require.NoError(t, err)
	assert.Empty(t, follows)

	// The dense edge caches span all types in sorted type order.
	assert.Equal(t, []model.ILoc{0, 1, 0}, store.Sources())
	assert.Equal(t, []float64{1.0, 1.0, 0.5}, store.Weights())
}

func TestParallelEdgeOrder(t *testing.T) {
	// Two parallel edges keep their edge-scan order in the adjacency
	// and weight views.
	store, err := NewEdgeStore(map[string]table.Table{
		"link": edgeTable(t, "e", []int64{0, 0}, []int64{1, 1}, []float64{1.0, 2.0}),
	}, 2)
	require.NoError(t, err)

	ns, err := store.NeighbourILocs(1, "link", true, false)
	require.NoError(t, err)
	assert.Equal(t, []model.ILoc{0, 0}, ns)

	ws, err := store.NeighbourWeights(1, "link", true, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0}, ws)
}

func TestSequentialBuildMatches(t *testing.T) {
	parallel := loopStore(t)
	sequential := loopStore(t, WithSequentialBuild())

	for node := model.ILoc(0); node < 3; node++ {
		for _, dir := range []struct{ ins, outs bool }{{true, false}, {false, true}, {true, true}} {
			want, err := parallel.NeighbourILocs(node, "link", dir.ins, dir.outs)
			require.NoError(t, err)
			got, err := sequential.NeighbourILocs(node, "link", dir.ins, dir.outs)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestEmptyEdgeStore(t *testing.T) {
	store, err := NewEdgeStore(map[string]table.Table{}, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Sources())
	assert.Empty(t, store.Targets())
	assert.Empty(t, store.Weights())

	// The required columns exist even with no rows.
	col, ok := store.Column(ColumnWeight)
	require.True(t, ok)
	assert.Equal(t, table.KindFloat, col.Kind())
	assert.Equal(t, 0, col.Len())
}
