package model

// Page is a paginated slice of results plus the counters clients need to
// render pagination controls.
type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
}

// NewPage wraps content into a Page, deriving TotalPages from the total
// element count. A non-positive size is treated as 1 so the math never
// divides by zero.
func NewPage[T any](content []T, number int, size int, totalElements int64) *Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := 0
	if totalElements > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    totalElements,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}
