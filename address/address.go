// SPDX-License-Identifier: MIT

package address

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for address validation.
var (
	// ErrInvalidAddress indicates a value that is not a well-formed address.
	ErrInvalidAddress = errors.New("address: invalid address")

	// ErrWrongKind indicates a node address used where an edge address is expected, or vice versa.
	ErrWrongKind = errors.New("address: wrong address kind")

	// ErrReservedSeparator indicates an address part containing the NUL separator.
	ErrReservedSeparator = errors.New("address: part contains reserved separator")
)

// separator terminates the nonce and every part.
const separator = "\x00"

const (
	nodeNonce = "N"
	edgeNonce = "E"

	nodeName = "NodeAddress"
	edgeName = "EdgeAddress"
)

// kindNames maps every known nonce to its type name, used to produce
// "expected X, got Y" diagnostics.
var kindNames = map[string]string{
	nodeNonce: nodeName,
	edgeNonce: edgeName,
}

// NodeAddress identifies a node. The zero value is not a valid address; use
// Node.Empty() for the empty address.
type NodeAddress string

// EdgeAddress identifies an edge. The zero value is not a valid address; use
// Edge.Empty() for the empty address.
type EdgeAddress string

// Module implements the operations shared by both address kinds.
// Use the package values Node and Edge.
type Module[A ~string] struct {
	name  string
	nonce string
}

var (
	// Node operates on NodeAddress values.
	Node = Module[NodeAddress]{name: nodeName, nonce: nodeNonce}

	// Edge operates on EdgeAddress values.
	Edge = Module[EdgeAddress]{name: edgeName, nonce: edgeNonce}
)

// Name returns the type name of the address kind ("NodeAddress" or "EdgeAddress").
func (m Module[A]) Name() string { return m.name }

// Empty returns the address with zero parts.
func (m Module[A]) Empty() A {
	return A(m.nonce + separator)
}

// ValidateParts reports ErrReservedSeparator if any part contains NUL.
func (m Module[A]) ValidateParts(parts []string) error {
	for i, p := range parts {
		if strings.Contains(p, separator) {
			return fmt.Errorf("%w: %s part %d (%q)", ErrReservedSeparator, m.name, i, p)
		}
	}

	return nil
}

// FromParts builds an address from its parts.
// Complexity: O(total length of parts).
func (m Module[A]) FromParts(parts ...string) (A, error) {
	if err := m.ValidateParts(parts); err != nil {
		return "", err
	}

	return A(encode(m.nonce, parts)), nil
}

// MustFromParts is FromParts that panics on error. Intended for literals.
func (m Module[A]) MustFromParts(parts ...string) A {
	a, err := m.FromParts(parts...)
	if err != nil {
		panic(err)
	}

	return a
}

// Validate checks that a is a well-formed address of this module's kind.
// A well-formed address of the other kind yields ErrWrongKind with a message
// of the form "expected NodeAddress, got EdgeAddress".
func (m Module[A]) Validate(a A) error {
	s := string(a)
	if strings.HasPrefix(s, m.nonce+separator) && strings.HasSuffix(s, separator) {
		return nil
	}
	for nonce, name := range kindNames {
		if nonce == m.nonce {
			continue
		}
		if strings.HasPrefix(s, nonce+separator) && strings.HasSuffix(s, separator) {
			return fmt.Errorf("%w: expected %s, got %s", ErrWrongKind, m.name, name)
		}
	}

	return fmt.Errorf("%w: expected %s, got %q", ErrInvalidAddress, m.name, s)
}

// ToParts returns the parts of a after validating it.
func (m Module[A]) ToParts(a A) ([]string, error) {
	if err := m.Validate(a); err != nil {
		return nil, err
	}

	return parts(string(a)), nil
}

// Append returns a with extra parts appended.
func (m Module[A]) Append(a A, extra ...string) (A, error) {
	if err := m.Validate(a); err != nil {
		return "", err
	}
	if err := m.ValidateParts(extra); err != nil {
		return "", err
	}
	if len(extra) == 0 {
		return a, nil
	}

	return A(string(a) + strings.Join(extra, separator) + separator), nil
}

// HasPrefix reports whether prefix's parts are a prefix of a's parts.
// Both arguments are assumed valid.
func (m Module[A]) HasPrefix(a, prefix A) bool {
	return strings.HasPrefix(string(a), string(prefix))
}

// ToString renders a stably, e.g. NodeAddress["foo","bar"]. Used in error
// messages; malformed values are rendered rather than rejected.
func (m Module[A]) ToString(a A) string {
	if err := m.Validate(a); err != nil {
		return fmt.Sprintf("%s(invalid %q)", m.name, string(a))
	}
	// json.Marshal of a []string cannot fail.
	b, _ := json.Marshal(parts(string(a)))

	return m.name + string(b)
}

// Parts returns the parts of a. The result for a malformed address is unspecified.
func (a NodeAddress) Parts() []string { return parts(string(a)) }

// HasPrefix reports whether p is a parts-prefix of a.
func (a NodeAddress) HasPrefix(p NodeAddress) bool { return Node.HasPrefix(a, p) }

// Compare orders addresses lexicographically by parts (-1, 0, +1).
func (a NodeAddress) Compare(b NodeAddress) int { return strings.Compare(string(a), string(b)) }

// String implements fmt.Stringer.
func (a NodeAddress) String() string { return Node.ToString(a) }

// Parts returns the parts of a. The result for a malformed address is unspecified.
func (a EdgeAddress) Parts() []string { return parts(string(a)) }

// HasPrefix reports whether p is a parts-prefix of a.
func (a EdgeAddress) HasPrefix(p EdgeAddress) bool { return Edge.HasPrefix(a, p) }

// Compare orders addresses lexicographically by parts (-1, 0, +1).
func (a EdgeAddress) Compare(b EdgeAddress) int { return strings.Compare(string(a), string(b)) }

// String implements fmt.Stringer.
func (a EdgeAddress) String() string { return Edge.ToString(a) }

// encode joins nonce and parts, terminating each segment with NUL.
func encode(nonce string, ps []string) string {
	var b strings.Builder
	n := len(nonce) + 1
	for _, p := range ps {
		n += len(p) + 1
	}
	b.Grow(n)
	b.WriteString(nonce)
	b.WriteString(separator)
	for _, p := range ps {
		b.WriteString(p)
		b.WriteString(separator)
	}

	return b.String()
}

// parts decodes an encoded address. "N\x00" has no parts; "N\x00\x00" has a
// single empty part.
func parts(s string) []string {
	i := strings.Index(s, separator)
	if i < 0 {
		return nil
	}
	rest := s[i+1:]
	if rest == "" {
		return []string{}
	}

	return strings.Split(rest[:len(rest)-1], separator)
}
