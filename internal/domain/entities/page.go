package entities

// Page is the paged list shape of the rental API.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// PageQuery holds the paging parameters of a list call. Page is zero-based.
type PageQuery struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}
