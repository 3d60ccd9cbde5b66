// Package stats computes the summary counters shown above each list page.
// Summaries are always recomputed from the full collection.
package stats

import "sort"

// Unset is the bucket for records whose grouping attribute is empty.
const Unset = "unset"

// Counts maps a bucket to the number of records in it.
type Counts map[string]int

// Get returns the count for bucket, zero when absent.
func (c Counts) Get(bucket string) int {
	return c[bucket]
}

// Total sums every bucket.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Buckets returns bucket names sorted alphabetically.
func (c Counts) Buckets() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CountBy groups items by key. Empty keys land in the Unset bucket.
func CountBy[T any](items []T, key func(*T) string) Counts {
	counts := Counts{}
	for i := range items {
		k := key(&items[i])
		if k == "" {
			k = Unset
		}
		counts[k]++
	}
	return counts
}

// CountIf counts items satisfying pred.
func CountIf[T any](items []T, pred func(*T) bool) int {
	n := 0
	for i := range items {
		if pred(&items[i]) {
			n++
		}
	}
	return n
}

// SumBy adds value over items.
func SumBy[T any](items []T, value func(*T) int64) int64 {
	var sum int64
	for i := range items {
		sum += value(&items[i])
	}
	return sum
}

// SumIf adds value over items satisfying pred.
func SumIf[T any](items []T, pred func(*T) bool, value func(*T) int64) int64 {
	var sum int64
	for i := range items {
		if pred(&items[i]) {
			sum += value(&items[i])
		}
	}
	return sum
}
