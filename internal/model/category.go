package model

// CategoryAll is the reserved category id meaning "no filter". Callers
// branch on it before resolution; it must never reach the category lookup.
const CategoryAll = 0

// Category is a labeled grouping of questions. Type is the display name.
// Categories are read-only at this layer; management lives elsewhere.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
