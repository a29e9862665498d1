// Package graphdata provides the in-memory element-indexing core of a
// graph data structure library.
//
// It stores node and edge attributes for large heterogeneous graphs
// and translates between user-facing identifiers and dense integer
// locations ("ilocs") used for all internal computation. After one
// O(E) preprocessing pass, degree and neighbour queries run in
// amortized O(1).
//
// # Quick Start
//
//	nodes := map[string]table.Table{
//	    "paper": paperTable, // row labels become node IDs
//	}
//	feats := map[string]tensor.Buffer{
//	    "paper": paperFeatures, // one row per paper
//	}
//	ns, _ := graphdata.NewNodeStore(nodes, feats)
//
//	edges := map[string]table.Table{
//	    "cites": citesTable, // columns: source, target, weight
//	}
//	es, _ := graphdata.NewEdgeStore(edges, ns.Len())
//
//	ilocs, _ := ns.IDs().ToILocs(model.Strings([]string{"paper-17"}))
//	deg, _ := es.Degrees("cites", true, true)
//	fmt.Println(deg.Degree(ilocs[0]))
//
// # Identifier Translation
//
// Every store owns an idindex.Index over its element identifiers and a
// second one over its type names, so a type is itself addressable by a
// small integer code. Translation is strict on request:
//
//	ilocs, err := ns.IDs().ToILocs(ids, idindex.Strict())
//
// # Immutability
//
// All stores are built once and never mutated, so they are safe to
// share across concurrent readers without locking. Construction either
// completes or fails fast with a typed validation error; no partially
// built store is ever returned.
package graphdata
