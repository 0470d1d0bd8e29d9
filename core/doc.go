// SPDX-License-Identifier: MIT

// Package core provides the contribution Graph: a directed multigraph whose
// nodes and edges are identified by hierarchical addresses (see package
// address), with first-class support for dangling edges.
//
// A dangling edge is an edge whose Src or Dst is not a node of the graph.
// Plugins emit such edges when they reference entities they do not own;
// merging graphs or adding the node later resolves them. Dangling edges are
// stored, serialized and re-pointed by ContractNodes, but never reported as
// neighbors and skipped by Edges unless ShowDangling is set.
//
// Core methods:
//
//	// Lifecycle (every call bumps ModificationCount, even no-ops and failures)
//	AddNode(n Node) error                  // O(1)
//	RemoveNode(a NodeAddress) error        // O(deg)
//	AddEdge(e Edge) error                  // O(1)
//	RemoveEdge(a EdgeAddress) error        // O(1)
//
//	// Point lookups (panic on a malformed or wrong-kind address)
//	HasNode, Node, HasEdge, Edge, IsDanglingEdge
//
//	// Lazy iteration in ascending address order
//	Nodes(NodesOptions) iter.Seq2[Node, error]
//	Edges(EdgesOptions) iter.Seq2[Edge, error]
//	Neighbors(a, NeighborsOptions) iter.Seq2[Neighbor, error]
//
//	// Derived graphs
//	Merge(graphs ...*Graph) (*Graph, error)
//	(*Graph).ContractNodes([]NodeContraction) (*Graph, error)
//	Copy() *Graph
//
//	// Canonical serialization
//	ToJSON() JSON, FromJSON(JSON) (*Graph, error), MarshalJSON, UnmarshalJSON
//
// Iterators fail fast: mutating the graph while an iterator is live makes
// its next pull yield ErrConcurrentModification.
//
// Equality (Equal) compares node and edge sets only; the order of mutations
// that produced a graph never matters, and equal graphs serialize to
// identical bytes.
//
// Errors:
//
//	ErrNodeConflict           - address already bound to a different node.
//	ErrEdgeConflict           - address already bound to a different edge.
//	ErrNodeReferenced         - RemoveNode of a node with non-dangling edges.
//	ErrNodeNotFound           - Neighbors of an absent node.
//	ErrChainedContraction     - a replacement is contracted by another rule.
//	ErrNonCanonicalJSON       - FromJSON input ToJSON could not produce.
//	ErrInvariantViolation     - CheckInvariants found corrupted indices.
//	ErrConcurrentModification - graph mutated under a live iterator.
//	ErrModificationOverflow   - modification counter exhausted.
package core
