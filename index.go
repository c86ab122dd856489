package enums

import (
	"slices"
	"strings"
)

// entry pairs a canonical name with the ordinal it belongs to.
type entry struct {
	name    string
	ordinal int
}

// compareKey is the single ordering used for both sorting and searching the
// index. It is a byte-wise comparison with no case folding.
func compareKey(a, b string) int {
	return strings.Compare(a, b)
}

// entryKey projects an index entry onto its key.
func entryKey(e entry) string {
	return e.name
}

// buildIndex returns the (name, ordinal) pairs of names sorted by name.
// The sort is stable, so duplicate names keep ordinal order and a lookup
// resolves to the lowest ordinal carrying that name.
func buildIndex(names []string) []entry {
	idx := make([]entry, len(names))
	for i, name := range names {
		idx[i] = entry{name: name, ordinal: i}
	}
	slices.SortStableFunc(idx, func(a, b entry) int {
		return compareKey(entryKey(a), entryKey(b))
	})
	return idx
}

// lowerBound returns the first position in idx whose key is not less than key.
// It returns len(idx) when every key is less.
func lowerBound(idx []entry, key string) int {
	pos, _ := slices.BinarySearchFunc(idx, key, func(e entry, k string) int {
		return compareKey(entryKey(e), k)
	})
	return pos
}

// search returns the ordinal registered for key.
func search(idx []entry, key string) (int, bool) {
	pos := lowerBound(idx, key)
	if pos == len(idx) || entryKey(idx[pos]) != key {
		return 0, false
	}
	return idx[pos].ordinal, true
}

// duplicates reports, for every name that appears more than once in the
// sorted index, the ordinals carrying it.
func duplicates(idx []entry) map[string][]int {
	var dups map[string][]int
	for i := 1; i < len(idx); i++ {
		if entryKey(idx[i]) != entryKey(idx[i-1]) {
			continue
		}
		if dups == nil {
			dups = make(map[string][]int)
		}
		name := entryKey(idx[i])
		if _, seen := dups[name]; !seen {
			dups[name] = []int{idx[i-1].ordinal}
		}
		dups[name] = append(dups[name], idx[i].ordinal)
	}
	return dups
}
