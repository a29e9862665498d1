package graphdata

import (
	"iter"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
)

// Column names every per-type edge table must supply.
const (
	// ColumnSource holds the node iloc each edge starts at.
	ColumnSource = "source"
	// ColumnTarget holds the node iloc each edge ends at.
	ColumnTarget = "target"
	// ColumnWeight holds the edge weight.
	ColumnWeight = "weight"
)

var edgeColumns = []columnSpec{
	{name: ColumnSource, kind: table.KindInt},
	{name: ColumnTarget, kind: table.KindInt},
	{name: ColumnWeight, kind: table.KindFloat},
}

// adjacency is one frozen per-type, per-direction adjacency table in
// CSR form: node n's neighbours live at neighbours[offsets[n]:offsets[n+1]],
// with weights positionally aligned. It covers the full node iloc
// space, so isolated nodes simply own an empty span.
type adjacency struct {
	offsets    []int64
	neighbours []model.ILoc
	weights    []float64

	// active marks the nodes with at least one entry, for sparse
	// iteration without scanning the full offset array.
	active *roaring.Bitmap
}

func (a *adjacency) numNodes() int { return len(a.offsets) - 1 }

func (a *adjacency) span(n model.ILoc) (lo, hi int64, ok bool) {
	if n < 0 || int(n) >= a.numNodes() {
		return 0, 0, false
	}
	return a.offsets[n], a.offsets[n+1], true
}

// typeAdjacency bundles the three directional views of one edge type.
type typeAdjacency struct {
	in   *adjacency
	out  *adjacency
	both *adjacency
}

// EdgeStore stores edge attributes and serves degree and neighbour
// queries in O(1) after a single O(E) preprocessing pass per edge
// type.
//
// An EdgeStore is immutable after construction and safe for concurrent
// readers.
type EdgeStore struct {
	*ElementStore

	numNodes int

	// dense views across all edge types, in edge iloc order, for bulk
	// algorithms that want the whole edge set without per-type
	// filtering
	sources []model.ILoc
	targets []model.ILoc
	weights []float64

	adj map[string]*typeAdjacency
}

// NewEdgeStore creates an EdgeStore from per-type edge tables.
// numNodes is the node count of the owning graph; it sizes every
// adjacency table so all node ilocs, including isolated ones, get an
// entry. Source and target values must be valid node ilocs.
func NewEdgeStore(shared map[string]table.Table, numNodes int, opts ...Option) (*EdgeStore, error) {
	o := applyOptions(opts)
	o.logger = o.logger.WithStore("edges")

	elements, err := newElementStore(shared, edgeColumns, o)
	if err != nil {
		return nil, err
	}

	srcCol, _ := elements.Column(ColumnSource)
	tgtCol, _ := elements.Column(ColumnTarget)
	wtCol, _ := elements.Column(ColumnWeight)

	srcRaw, _ := srcCol.Int64s()
	tgtRaw, _ := tgtCol.Int64s()
	weights, _ := wtCol.Float64s()

	sources := make([]model.ILoc, len(srcRaw))
	targets := make([]model.ILoc, len(tgtRaw))
	for i := range srcRaw {
		sources[i] = model.ILoc(srcRaw[i])
		targets[i] = model.ILoc(tgtRaw[i])
	}

	s := &EdgeStore{
		ElementStore: elements,
		numNodes:     numNodes,
		sources:      sources,
		targets:      targets,
		weights:      weights,
		adj:          make(map[string]*typeAdjacency, len(shared)),
	}

	// Per-type builds are independent: each one reads a disjoint edge
	// range and writes into its own pre-created entry.
	g := new(errgroup.Group)
	if o.sequential {
		g.SetLimit(1)
	} else {
		g.SetLimit(runtime.GOMAXPROCS(0))
	}

	for _, typeName := range elements.typeNames {
		ta := &typeAdjacency{}
		s.adj[typeName] = ta

		r := elements.typeRanges[typeName]
		srcs := sources[r.Start:r.Stop]
		tgts := targets[r.Start:r.Stop]
		wts := weights[r.Start:r.Stop]

		g.Go(func() error {
			started := time.Now()

			for i := range srcs {
				if e := checkNodeILoc(typeName, srcs[i], numNodes); e != nil {
					return e
				}
				if e := checkNodeILoc(typeName, tgts[i], numNodes); e != nil {
					return e
				}
			}

			ta.in = buildDirected(tgts, srcs, wts, numNodes)
			ta.out = buildDirected(srcs, tgts, wts, numNodes)
			ta.both = buildUndirected(srcs, tgts, wts, numNodes)

			o.logger.Debug("built adjacency tables",
				"type", typeName, "edges", len(srcs), "took", time.Since(started))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s, nil
}

func checkNodeILoc(typeName string, n model.ILoc, numNodes int) error {
	if n < 0 || int(n) >= numNodes {
		return &NodeILocRangeError{TypeName: typeName, ILoc: n, NumNodes: numNodes}
	}
	return nil
}

// buildDirected freezes one directed view: for each i, values[i] is
// appended to keys[i]'s list, in edge-scan order. Counting first and
// filling by cursor avoids any dynamic-growth container.
func buildDirected(keys, values []model.ILoc, wts []float64, numNodes int) *adjacency {
	offsets := make([]int64, numNodes+1)
	for _, k := range keys {
		offsets[k+1]++
	}
	for n := 1; n <= numNodes; n++ {
		offsets[n] += offsets[n-1]
	}

	neighbours := make([]model.ILoc, len(values))
	weights := make([]float64, len(values))
	cursor := make([]int64, numNodes)
	copy(cursor, offsets[:numNodes])

	for i, k := range keys {
		p := cursor[k]
		neighbours[p] = values[i]
		weights[p] = wts[i]
		cursor[k] = p + 1
	}

	return freeze(offsets, neighbours, weights)
}

// buildUndirected freezes the combined view: every edge contributes
// its source to the target's list, and its target to the source's list
// unless it is a self-loop. Self-loops appear once, matching standard
// undirected neighbour semantics for loops.
func buildUndirected(srcs, tgts []model.ILoc, wts []float64, numNodes int) *adjacency {
	offsets := make([]int64, numNodes+1)
	entries := 0
	for i := range srcs {
		offsets[tgts[i]+1]++
		entries++
		if srcs[i] != tgts[i] {
			offsets[srcs[i]+1]++
			entries++
		}
	}
	for n := 1; n <= numNodes; n++ {
		offsets[n] += offsets[n-1]
	}

	neighbours := make([]model.ILoc, entries)
	weights := make([]float64, entries)
	cursor := make([]int64, numNodes)
	copy(cursor, offsets[:numNodes])

	put := func(k, v model.ILoc, w float64) {
		p := cursor[k]
		neighbours[p] = v
		weights[p] = w
		cursor[k] = p + 1
	}

	for i := range srcs {
		put(tgts[i], srcs[i], wts[i])
		if srcs[i] != tgts[i] {
			put(srcs[i], tgts[i], wts[i])
		}
	}

	return freeze(offsets, neighbours, weights)
}

func freeze(offsets []int64, neighbours []model.ILoc, weights []float64) *adjacency {
	active := roaring.New()
	for n := 0; n < len(offsets)-1; n++ {
		if offsets[n+1] > offsets[n] {
			active.Add(uint32(n))
		}
	}
	return &adjacency{
		offsets:    offsets,
		neighbours: neighbours,
		weights:    weights,
		active:     active,
	}
}

// NumNodes returns the node iloc space the adjacency tables cover.
func (s *EdgeStore) NumNodes() int { return s.numNodes }

// Sources returns the source node iloc of every edge, in edge iloc
// order. The returned slice is shared and must not be modified.
func (s *EdgeStore) Sources() []model.ILoc { return s.sources }

// Targets returns the target node iloc of every edge, in edge iloc
// order. The returned slice is shared and must not be modified.
func (s *EdgeStore) Targets() []model.ILoc { return s.targets }

// Weights returns the weight of every edge, in edge iloc order. The
// returned slice is shared and must not be modified.
func (s *EdgeStore) Weights() []float64 { return s.weights }

// adjLookup selects exactly one of the three directional views.
func (s *EdgeStore) adjLookup(typeName string, ins, outs bool) (*adjacency, error) {
	ta, ok := s.adj[typeName]
	if !ok {
		return nil, &UnknownTypeError{TypeName: typeName}
	}
	switch {
	case ins && outs:
		return ta.both, nil
	case ins:
		return ta.in, nil
	case outs:
		return ta.out, nil
	default:
		return nil, ErrDirection
	}
}

// Degrees returns the per-node degrees for one edge type, counting
// incoming edges, outgoing edges, or the undirected combination per
// the ins/outs flags. At least one flag must be set.
func (s *EdgeStore) Degrees(typeName string, ins, outs bool) (*DegreeView, error) {
	adj, err := s.adjLookup(typeName, ins, outs)
	if err != nil {
		return nil, err
	}
	return &DegreeView{adj: adj}, nil
}

// NeighbourILocs returns the neighbour ilocs of node for one edge
// type, selected by the same ins/outs rule as Degrees. The returned
// slice is shared and must not be modified.
func (s *EdgeStore) NeighbourILocs(node model.ILoc, typeName string, ins, outs bool) ([]model.ILoc, error) {
	adj, err := s.adjLookup(typeName, ins, outs)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := adj.span(node)
	if !ok {
		return nil, &NodeILocRangeError{TypeName: typeName, ILoc: node, NumNodes: s.numNodes}
	}
	return adj.neighbours[lo:hi], nil
}

// NeighbourWeights returns the edge weights positionally aligned with
// NeighbourILocs. The returned slice is shared and must not be
// modified.
func (s *EdgeStore) NeighbourWeights(node model.ILoc, typeName string, ins, outs bool) ([]float64, error) {
	adj, err := s.adjLookup(typeName, ins, outs)
	if err != nil {
		return nil, err
	}
	lo, hi, ok := adj.span(node)
	if !ok {
		return nil, &NodeILocRangeError{TypeName: typeName, ILoc: node, NumNodes: s.numNodes}
	}
	return adj.weights[lo:hi], nil
}

// DegreeView is a read-only per-node degree lookup over one
// directional adjacency view. Absent and isolated nodes report 0.
type DegreeView struct {
	adj *adjacency
}

// Degree returns the degree of node, defaulting to 0 for any iloc
// outside the node space.
func (v *DegreeView) Degree(node model.ILoc) int {
	lo, hi, ok := v.adj.span(node)
	if !ok {
		return 0
	}
	return int(hi - lo)
}

// Len returns the size of the node iloc space the view covers.
func (v *DegreeView) Len() int { return v.adj.numNodes() }

// NonZero iterates the nodes with nonzero degree, in iloc order,
// yielding each node and its degree.
func (v *DegreeView) NonZero() iter.Seq2[model.ILoc, int] {
	return func(yield func(model.ILoc, int) bool) {
		it := v.adj.active.Iterator()
		for it.HasNext() {
			n := model.ILoc(it.Next())
			if !yield(n, v.Degree(n)) {
				return
			}
		}
	}
}
