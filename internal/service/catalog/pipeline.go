package catalog

import (
	"cmp"
	"slices"
	"sort"

	"github.com/zhouzirui/pokedex/backend/internal/model/pokemon"
)

// AvailableTypes collects the normalized types present in items.
func AvailableTypes(items []pokemon.Pokemon) map[string]struct{} {
	available := make(map[string]struct{})
	for _, item := range items {
		for _, t := range item.Types() {
			available[t] = struct{}{}
		}
	}
	return available
}

// SortedTypes returns the keys of a type set in ascending order.
func SortedTypes(set map[string]struct{}) []string {
	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// InvalidTypes returns the requested types missing from available, preserving order.
func InvalidTypes(requested []string, available map[string]struct{}) []string {
	var invalid []string
	for _, t := range requested {
		if _, ok := available[t]; !ok {
			invalid = append(invalid, t)
		}
	}
	return invalid
}

// FilterByType keeps records whose primary or secondary type is in types.
// An empty types list keeps everything. The result never aliases items.
func FilterByType(items []pokemon.Pokemon, types []string) []pokemon.Pokemon {
	if len(types) == 0 {
		return slices.Clone(items)
	}

	wanted := make(map[string]struct{}, len(types))
	for _, t := range types {
		wanted[t] = struct{}{}
	}

	filtered := make([]pokemon.Pokemon, 0, len(items))
	for _, item := range items {
		if item.HasType(wanted) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortByNumber stable-sorts items in place by number.
func SortByNumber(items []pokemon.Pokemon, order string) {
	desc := order == OrderDesc
	slices.SortStableFunc(items, func(a, b pokemon.Pokemon) int {
		c := cmp.Compare(a.Number, b.Number)
		if desc {
			return -c
		}
		return c
	})
}

// Paginate returns the 1-based page window of items. Windows past the end are empty.
func Paginate(items []pokemon.Pokemon, page, pageSize int) []pokemon.Pokemon {
	if page-1 > len(items)/pageSize {
		return items[len(items):]
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return items[len(items):]
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// TotalPages is the ceiling of totalItems / pageSize.
func TotalPages(totalItems, pageSize int) int {
	if totalItems == 0 {
		return 0
	}
	return (totalItems-1)/pageSize + 1
}
