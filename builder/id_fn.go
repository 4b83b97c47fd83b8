// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// id_fn.go - vertex label schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its label.
type IDFn func(idx int) string

// symbolCount is the size of the A–Z alphabet used by SymbolIDFn.
const symbolCount = 26

// DefaultIDFn returns the decimal index: 0 → "0", 12 → "12".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single upper-case letter: 0 → "A", 25 → "Z".
// Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx >= symbolCount {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn returns spreadsheet-style column names:
// 0 → "A", 25 → "Z", 26 → "AA", 701 → "ZZ", 702 → "AAA".
// Panics on a negative index.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/symbolCount - 1 {
		runes = append(runes, rune('A'+(i%symbolCount)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithSymbolIDs is shorthand for WithIDScheme(SymbolIDFn).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs is shorthand for WithIDScheme(ExcelColumnIDFn).
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
