// Package query derives the visible subset of a collection from the list
// page's filter controls.
package query

import (
	"sort"
	"strings"
)

// Accessor reads one text field of a record.
type Accessor[T any] func(*T) string

// Schema names the fields a collection exposes to filtering.
type Schema[T any] struct {
	// Search lists the fields probed by the free-text search term.
	Search []Accessor[T]
	// Facets maps a filter name (status, category, ...) to the field it compares.
	Facets map[string]Accessor[T]
}

// FacetNames returns the facet names in sorted order.
func (s Schema[T]) FacetNames() []string {
	names := make([]string, 0, len(s.Facets))
	for name := range s.Facets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasFacet reports whether name is a known facet.
func (s Schema[T]) HasFacet(name string) bool {
	_, ok := s.Facets[name]
	return ok
}

// Filter is the state of a list page's filter controls. Empty values are
// wildcards.
type Filter struct {
	Search string
	Facets map[string]string
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	if strings.TrimSpace(f.Search) != "" {
		return false
	}
	for _, v := range f.Facets {
		if v != "" {
			return false
		}
	}
	return true
}

// With returns a copy of f with the facet set.
func (f Filter) With(facet, value string) Filter {
	facets := make(map[string]string, len(f.Facets)+1)
	for k, v := range f.Facets {
		facets[k] = v
	}
	facets[facet] = value
	return Filter{Search: f.Search, Facets: facets}
}

// Apply returns the records matching every non-empty criterion, preserving
// their relative order. The search term matches when any search field
// contains it, ignoring case. A facet unknown to the schema matches nothing.
func Apply[T any](items []T, schema Schema[T], f Filter) []T {
	result := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(f.Search))
	for i := range items {
		if Matches(&items[i], schema, f.Facets, term) {
			result = append(result, items[i])
		}
	}
	return result
}

// Matches evaluates one record. term must already be lower-cased.
func Matches[T any](item *T, schema Schema[T], facets map[string]string, term string) bool {
	for name, want := range facets {
		if want == "" {
			continue
		}
		get, ok := schema.Facets[name]
		if !ok || get(item) != want {
			return false
		}
	}
	if term == "" {
		return true
	}
	for _, get := range schema.Search {
		if strings.Contains(strings.ToLower(get(item)), term) {
			return true
		}
	}
	return false
}

// Page restricts items to a window. A non-positive limit keeps everything
// after offset.
func Page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
