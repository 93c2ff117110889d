package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 100
	// MaxLimit caps how many rows any paged report can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Normalize returns a copy with the limit clamped and a non-negative offset.
func (p Params) Normalize() Params {
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return Params{Limit: NormalizeLimit(p.Limit), Offset: offset}
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// LimitWithBuffer returns the normalization result plus one to detect the next page.
func LimitWithBuffer(limit int) int {
	return NormalizeLimit(limit) + 1
}

// Page describes the slice of rows a paged response carries.
type Page struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
