// Package pagination holds the offset/limit query shared by list endpoints.
package pagination

// List endpoints return at most MaxLimit rows per page.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Query is bound from ?skip=&limit=. Negative or non-integer values fail binding.
type Query struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=0"`
}

// Clamp normalizes skip and limit for a repository call.
// Negative skip becomes 0 and limit is capped at MaxLimit.
func Clamp(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit < 0:
		limit = 0
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return skip, limit
}
