// Package pagination slices ordered result sets into fixed-size pages.
package pagination

// Page returns the window of items for a 1-based page number together with
// a flag reporting whether later pages exist. A non-positive page is
// treated as page 1. A page past the end yields an empty slice, never an
// error; callers that need at least one result translate that themselves.
// Ordering is the caller's responsibility and the input is never mutated.
func Page[T any](items []T, page, perPage int) ([]T, bool) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}, false
	}

	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], end < len(items)
}
