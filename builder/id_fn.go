package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex label from its zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns an IDFn yielding prefix+idx, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ExcelColumnIDFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}

	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WithPrefixIDs labels vertices prefix0, prefix1, ...
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithExcelColumnIDs labels vertices A, B, ..., Z, AA, AB, ...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
