package pathscan

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Index is an immutable, sorted set of command names.
type Index struct {
	names []string
}

// NewIndex builds an Index from names, dropping duplicates and empty names.
// The input slice is not modified.
func NewIndex(names []string) Index {
	unique := lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		return name != ""
	}))
	sort.Strings(unique)
	return Index{names: unique}
}

// Len returns the number of commands in the index.
func (ix Index) Len() int {
	return len(ix.names)
}

// Names returns a copy of the sorted command names.
func (ix Index) Names() []string {
	result := make([]string, len(ix.names))
	copy(result, ix.names)
	return result
}

// Contains reports whether name is in the index.
func (ix Index) Contains(name string) bool {
	i := sort.SearchStrings(ix.names, name)
	return i < len(ix.names) && ix.names[i] == name
}

// WithPrefix returns the sorted names that start with prefix. Matching is
// case-sensitive and byte-wise. An empty prefix matches every name.
func (ix Index) WithPrefix(prefix string) []string {
	start := sort.SearchStrings(ix.names, prefix)
	end := start
	for end < len(ix.names) && strings.HasPrefix(ix.names[end], prefix) {
		end++
	}

	result := make([]string, end-start)
	copy(result, ix.names[start:end])
	return result
}
