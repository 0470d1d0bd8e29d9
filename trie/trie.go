// SPDX-License-Identifier: MIT

// Package trie stores values keyed by address prefixes and answers
// "which values lie along the path to this address" queries.
//
// Each trie node carries an optional value and a map from the next address
// part to a child. The structure is shallow (depth = number of parts of the
// longest key) and wide, so a map per level is enough; the hot path,
// GetLast, costs O(depth).
//
// Presence is tracked separately from the value, so zero values (nil
// pointers, zero structs, 0.0) are stored verbatim and are distinct from
// absence.
package trie

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/credrank/address"
)

// ErrOverwrite indicates that a value already exists at exactly the given address.
var ErrOverwrite = errors.New("trie: overwrite")

type entry[V any] struct {
	children map[string]*entry[V]
	value    V
	hasValue bool
}

// Trie maps address prefixes of one kind to values of type V.
type Trie[A ~string, V any] struct {
	module address.Module[A]
	root   *entry[V]
	size   int
}

// NewNodeTrie returns an empty trie keyed by node addresses.
func NewNodeTrie[V any]() *Trie[address.NodeAddress, V] {
	return &Trie[address.NodeAddress, V]{module: address.Node, root: &entry[V]{}}
}

// NewEdgeTrie returns an empty trie keyed by edge addresses.
func NewEdgeTrie[V any]() *Trie[address.EdgeAddress, V] {
	return &Trie[address.EdgeAddress, V]{module: address.Edge, root: &entry[V]{}}
}

// Add stores v at a. It fails with ErrOverwrite if a already holds a value,
// and with an address error if a is malformed or of the wrong kind.
// Complexity: O(depth(a)).
func (t *Trie[A, V]) Add(a A, v V) error {
	parts, err := t.module.ToParts(a)
	if err != nil {
		return fmt.Errorf("trie: Add: %w", err)
	}
	e := t.root
	for _, p := range parts {
		if e.children == nil {
			e.children = make(map[string]*entry[V])
		}
		next, ok := e.children[p]
		if !ok {
			next = &entry[V]{}
			e.children[p] = next
		}
		e = next
	}
	if e.hasValue {
		return fmt.Errorf("%w: %s", ErrOverwrite, t.module.ToString(a))
	}
	e.value = v
	e.hasValue = true
	t.size++

	return nil
}

// Get returns every value stored at a prefix of a, shortest prefix first.
// Prefixes without a value contribute nothing. Malformed addresses yield nil.
// Complexity: O(depth(a)).
func (t *Trie[A, V]) Get(a A) []V {
	var out []V
	t.walk(a, func(v V) { out = append(out, v) })

	return out
}

// GetLast returns the value stored at the longest prefix of a, if any.
// Complexity: O(depth(a)), no allocation.
func (t *Trie[A, V]) GetLast(a A) (V, bool) {
	var (
		last  V
		found bool
	)
	t.walk(a, func(v V) { last, found = v, true })

	return last, found
}

// Len returns the number of stored values.
func (t *Trie[A, V]) Len() int { return t.size }

func (t *Trie[A, V]) walk(a A, visit func(V)) {
	parts, err := t.module.ToParts(a)
	if err != nil {
		return
	}
	e := t.root
	if e.hasValue {
		visit(e.value)
	}
	for _, p := range parts {
		next, ok := e.children[p]
		if !ok {
			return
		}
		e = next
		if e.hasValue {
			visit(e.value)
		}
	}
}
