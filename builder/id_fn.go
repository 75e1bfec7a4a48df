// Package builder provides internal helper functions and types
// for configuring label schemes in topology constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node label from its zero-based per-role index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// SymbolNumberIDFn returns prefix + decimal index, e.g. "tor0", "tor1", ...
// Complexity: O(d) where d is the number of decimal digits in idx.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// HexIDFn returns prefix + lowercase hexadecimal index, e.g. "s0", "sa", "sff".
// Complexity: O(d) time where d = hex digit count, O(1) space.
// Panics if idx < 0.
func HexIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.FormatInt(int64(idx), 16)
	}
}

// ExcelColumnIDFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Handy for small rack diagrams where switches are lettered.
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithSwitchIDs sets the Jellyfish switch label scheme.
// Panics on nil.
// Complexity: O(1).
func WithSwitchIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithSwitchIDs(nil)")
	}
	return func(c *builderConfig) { c.switchID = fn }
}

// WithServerIDs sets the Jellyfish server label scheme.
// Panics on nil.
// Complexity: O(1).
func WithServerIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithServerIDs(nil)")
	}
	return func(c *builderConfig) { c.serverID = fn }
}
