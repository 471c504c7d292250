package models

// Page is the paginated envelope returned by the backend's list
// endpoints. It is passed through to callers unmodified.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Pagination is the slice-level projection of a Page (everything except
// the results themselves).
type Pagination struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// PageInfo extracts the Pagination projection from a Page.
func PageInfo[T any](p *Page[T]) Pagination {
	if p == nil {
		return Pagination{}
	}
	return Pagination{Count: p.Count, Next: p.Next, Previous: p.Previous}
}
