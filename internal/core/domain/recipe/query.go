package recipe

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery holds the list query parameters as supplied by the caller.
type ListQuery struct {
	Page       int
	PageSize   int
	Search     string
	Difficulty string
}

// Normalized applies defaults and clamps PageSize into [1, MaxPageSize].
// Page is only defaulted, never clamped, so the caller-supplied value is
// echoed back in the page result.
func (q ListQuery) Normalized() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the number of records to skip for this page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// PageResult is one page of recipes together with pagination totals.
type PageResult struct {
	Recipes      []*Recipe `json:"recipes"`
	TotalRecipes int       `json:"totalRecipes"`
	TotalPages   int       `json:"totalPages"`
	CurrentPage  int       `json:"currentPage"`
}

// PageCount returns ceil(total/pageSize); zero when total is zero.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
