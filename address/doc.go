// SPDX-License-Identifier: MIT

// Package address provides hierarchical, prefix-addressed identifiers for
// graph nodes and edges.
//
// An address is an ordered sequence of string parts; the empty sequence is a
// valid address. Node and edge addresses are two distinct named types,
// NodeAddress and EdgeAddress, so the compiler keeps them apart at call sites.
// Because both are strings underneath, an explicit conversion can still smuggle
// one kind into the other; every consumer therefore validates the embedded
// kind tag at its entry points (Module.Validate).
//
// Encoding:
//
//	<nonce> NUL <part1> NUL <part2> NUL ... <partN> NUL
//
// where nonce is "N" for nodes and "E" for edges. Parts may not contain NUL.
// The encoding has two useful properties:
//
//   - Byte-wise comparison of two encodings of the same kind equals the
//     lexicographic comparison of their parts, so plain string ordering is the
//     canonical address order.
//   - a has parts-prefix p  ⇔  strings.HasPrefix(a, p).
//
// Operations are exposed through the Node and Edge module values:
//
//	a := address.Node.MustFromParts("github", "user", "octocat")
//	p := address.Node.MustFromParts("github", "user")
//	a.HasPrefix(p)            // true
//	address.Node.ToString(a)  // NodeAddress["github","user","octocat"]
//
// Errors:
//
//	ErrInvalidAddress    – value is not a well-formed address of any kind.
//	ErrWrongKind         – a node address was given where an edge address is expected, or vice versa.
//	ErrReservedSeparator – a part contains the reserved NUL separator.
package address
