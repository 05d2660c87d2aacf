package model

// PostFilters is the optional filter pair for published post listings.
// A nil field means "no constraint", never "match nothing".
type PostFilters struct {
	CategoryID *int64
	TagID      *int64
}
