package services

import (
	"fmt"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
)

// listCachePattern matches every cached list page for coarse eviction.
const listCachePattern = "recipes:*"

// ListCacheKey derives the cache key for one page of list results from the
// normalized query. Search and difficulty go into the key verbatim: case is
// preserved (even though the store matches case-insensitively) and delimiter
// characters are not escaped, so values containing "&" or "=" can collide
// with adjacent fields. Both are accepted limitations of the key format.
func ListCacheKey(q recipe.ListQuery) string {
	return fmt.Sprintf("recipes:page=%d&pageSize=%d&search=%s&difficulty=%s",
		q.Page, q.PageSize, q.Search, q.Difficulty)
}
