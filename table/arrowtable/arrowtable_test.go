package arrowtable

import (
	"testing"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"github.com/apache/arrow/go/v14/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/graphdata/model"
)

func edgeRecord(t *testing.T) arrow.Record {
	t.Helper()

	pool := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.BinaryTypes.String},
		{Name: "source", Type: arrow.PrimitiveTypes.Int64},
		{Name: "target", Type: arrow.PrimitiveTypes.Int32},
		{Name: "weight", Type: arrow.PrimitiveTypes.Float64},
	}, nil)

	idBuilder := array.NewStringBuilder(pool)
	sourceBuilder := array.NewInt64Builder(pool)
	targetBuilder := array.NewInt32Builder(pool)
	weightBuilder := array.NewFloat64Builder(pool)
	defer func() {
		idBuilder.Release()
		sourceBuilder.Release()
		targetBuilder.Release()
		weightBuilder.Release()
	}()

	idBuilder.AppendValues([]string{"e0", "e1"}, nil)
	sourceBuilder.AppendValues([]int64{0, 1}, nil)
	targetBuilder.AppendValues([]int32{1, 2}, nil)
	weightBuilder.AppendValues([]float64{1.0, 2.5}, nil)

	idArray := idBuilder.NewArray()
	sourceArray := sourceBuilder.NewArray()
	targetArray := targetBuilder.NewArray()
	weightArray := weightBuilder.NewArray()
	defer func() {
		idArray.Release()
		sourceArray.Release()
		targetArray.Release()
		weightArray.Release()
	}()

	return array.NewRecord(schema, []arrow.Array{idArray, sourceArray, targetArray, weightArray}, 2)
}

func TestFromRecord(t *testing.T) {
	rec := edgeRecord(t)
	defer rec.Release()

	tbl, err := FromRecord(rec, "id")
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, model.Strings([]string{"e0", "e1"}), tbl.Labels())
	assert.Equal(t, []string{"source", "target", "weight"}, tbl.ColumnNames())

	src, ok := tbl.Column("source")
	require.True(t, ok)
	vs, _ := src.Int64s()
	assert.Equal(t, []int64{0, 1}, vs)

	// Int32 widens to int64.
	tgt, ok := tbl.Column("target")
	require.True(t, ok)
	vs, _ = tgt.Int64s()
	assert.Equal(t, []int64{1, 2}, vs)

	wt, ok := tbl.Column("weight")
	require.True(t, ok)
	ws, _ := wt.Float64s()
	assert.Equal(t, []float64{1.0, 2.5}, ws)
}

func TestFromRecordMissingLabel(t *testing.T) {
	rec := edgeRecord(t)
	defer rec.Release()

	_, err := FromRecord(rec, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "label column")
}

func TestFromRecordNulls(t *testing.T) {
	pool := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "weight", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	}, nil)

	idBuilder := array.NewInt64Builder(pool)
	weightBuilder := array.NewFloat64Builder(pool)
	defer func() {
		idBuilder.Release()
		weightBuilder.Release()
	}()

	idBuilder.AppendValues([]int64{1, 2}, nil)
	weightBuilder.Append(1.0)
	weightBuilder.AppendNull()

	idArray := idBuilder.NewArray()
	weightArray := weightBuilder.NewArray()
	defer func() {
		idArray.Release()
		weightArray.Release()
	}()

	rec := array.NewRecord(schema, []arrow.Array{idArray, weightArray}, 2)
	defer rec.Release()

	_, err := FromRecord(rec, "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null")
}
