// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// id_fn.go - vertex ID schemes. Every scheme is deterministic; schemes with
// a bounded domain panic outside it (programmer error).

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a 0-based vertex index to a node label.
type IDFn func(idx int) string

// DefaultIDFn renders idx in base 10 ("0","1",...). Labels parse as integer NodeIDs.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn renders 0..25 as "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// SymbolNumberIDFn renders prefix+idx, e.g. "v0","v1",...
// Panics on a negative idx.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
