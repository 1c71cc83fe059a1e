// SPDX-License-Identifier: MIT
//
// File: node_id.go
// Role: Tagged node identity (integer or opaque text), decided once at parse time.
// Determinism:
//   - Compare is a total order: integers first (numeric), then text (lexicographic).
//   - Ties between distinct labels with the same numeric value ("8" vs "08")
//     fall back to label order so sorting never depends on input order.

package core

import (
	"cmp"
	"strconv"
	"strings"
)

// NodeID identifies a node. It is either an integer identifier (the whole
// trimmed label parses as a base-10 int64) or an opaque text identifier.
// Two NodeIDs are equal iff their labels are equal; NodeID is comparable
// and safe to use as a map key.
type NodeID struct {
	label string // trimmed label, never empty for a parsed ID
	num   int64  // numeric value, valid when isInt
	isInt bool   // tag: integer vs. text
}

// ParseNodeID trims surrounding white space from label, classifies it once
// and returns its NodeID, so " 8" and "8" name the same integer node.
// Returns ErrEmptyNodeID for an empty or blank label.
// Complexity: O(len(label)).
func ParseNodeID(label string) (NodeID, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return NodeID{}, ErrEmptyNodeID
	}
	n, err := strconv.ParseInt(label, 10, 64)
	if err != nil {
		return NodeID{label: label}, nil
	}

	return NodeID{label: label, num: n, isInt: true}, nil
}

// MustNodeID is ParseNodeID for literals known to be valid; it panics on
// an empty label. Intended for tests, examples and fixed fixtures.
func MustNodeID(label string) NodeID {
	id, err := ParseNodeID(label)
	if err != nil {
		panic(err)
	}

	return id
}

// IDs parses several labels at once via MustNodeID.
func IDs(labels ...string) []NodeID {
	out := make([]NodeID, len(labels))
	for i, l := range labels {
		out[i] = MustNodeID(l)
	}

	return out
}

// String returns the trimmed label.
func (n NodeID) String() string { return n.label }

// IsZero reports whether n is the zero NodeID (never produced by ParseNodeID).
func (n NodeID) IsZero() bool { return n.label == "" }

// Int returns the numeric value and true when n is an integer identifier.
func (n NodeID) Int() (int64, bool) { return n.num, n.isInt }

// Compare orders n against o: -1, 0 or +1.
//
//   - integer vs integer: numeric order, then label order on ties;
//   - integer vs text:    integer first;
//   - text vs text:       lexicographic label order.
//
// Complexity: O(len(label)) worst case.
func (n NodeID) Compare(o NodeID) int {
	switch {
	case n.isInt && o.isInt:
		if c := cmp.Compare(n.num, o.num); c != 0 {
			return c
		}
	case n.isInt:
		return -1
	case o.isInt:
		return 1
	}

	return cmp.Compare(n.label, o.label)
}

// Less reports whether n sorts before o in display order.
func (n NodeID) Less(o NodeID) bool { return n.Compare(o) < 0 }
