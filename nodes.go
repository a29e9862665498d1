package graphdata

import (
	"github.com/hupe1980/graphdata/model"
	"github.com/hupe1980/graphdata/table"
	"github.com/hupe1980/graphdata/tensor"
)

// FeatureInfo describes the feature payload of one node type.
type FeatureInfo struct {
	// Dim is the feature dimensionality (columns per row).
	Dim int
	// DType is the element type of the payload.
	DType tensor.DType
}

// NodeStore stores node attributes and per-type feature payloads.
//
// Feature payloads are shared references: the store never copies them,
// it only validates their shape and serves row selections.
type NodeStore struct {
	*ElementStore

	features map[string]tensor.Buffer
}

// NewNodeStore creates a NodeStore from per-type node tables and
// per-type feature payloads. Every payload's row count must equal its
// type's element count.
func NewNodeStore(shared map[string]table.Table, features map[string]tensor.Buffer, opts ...Option) (*NodeStore, error) {
	o := applyOptions(opts)
	o.logger = o.logger.WithStore("nodes")

	elements, err := newElementStore(shared, nil, o)
	if err != nil {
		return nil, err
	}

	for typeName, buf := range features {
		r, err := elements.TypeRange(typeName)
		if err != nil {
			return nil, err
		}

		rows, cols := buf.Dims()
		if rows != r.Len() {
			return nil, &RowCountMismatchError{
				TypeName: typeName,
				Expected: r.Len(),
				Actual:   rows,
			}
		}

		o.logger.Debug("attached feature payload",
			"type", typeName, "rows", rows, "dim", cols, "dtype", buf.DType().String())
	}

	return &NodeStore{
		ElementStore: elements,
		features:     features,
	}, nil
}

// Features returns the feature rows for a selection of node ilocs, all
// of which must belong to the given type. Ilocs from another type, or
// unknown-ID sentinels, fail with an *UnknownIDsError.
func (s *NodeStore) Features(typeName string, ilocs []model.ILoc) (tensor.Buffer, error) {
	r, err := s.TypeRange(typeName)
	if err != nil {
		return nil, err
	}

	buf, ok := s.features[typeName]
	if !ok {
		return nil, &NoFeaturesError{TypeName: typeName}
	}

	rows := make([]int, len(ilocs))
	var unknown []model.ILoc
	for i, loc := range ilocs {
		offset := loc - r.Start
		// Negative offsets come from earlier types or sentinel misses,
		// too-large ones from later types.
		if offset < 0 || offset >= model.ILoc(r.Len()) {
			unknown = append(unknown, loc)
			continue
		}
		rows[i] = int(offset)
	}
	if len(unknown) > 0 {
		return nil, &UnknownIDsError{TypeName: typeName, ILocs: unknown}
	}

	return buf.Gather(rows)
}

// FeatureInfo returns, per type with a payload, the feature
// dimensionality and element type, for callers that need to allocate
// compatible buffers.
func (s *NodeStore) FeatureInfo() map[string]FeatureInfo {
	info := make(map[string]FeatureInfo, len(s.features))
	for typeName, buf := range s.features {
		_, cols := buf.Dims()
		info[typeName] = FeatureInfo{Dim: cols, DType: buf.DType()}
	}
	return info
}
