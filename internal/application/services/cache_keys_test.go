package services_test

import (
	"testing"

	"github.com/culinara/recipe-service/internal/application/services"
	"github.com/culinara/recipe-service/internal/core/domain/recipe"
)

func TestListCacheKey_Deterministic(t *testing.T) {
	q := recipe.ListQuery{Page: 2, PageSize: 20, Search: "Pasta", Difficulty: "easy"}.Normalized()
	first := services.ListCacheKey(q)
	second := services.ListCacheKey(q)
	if first != second {
		t.Fatalf("expected identical keys, got %q and %q", first, second)
	}
	if first != "recipes:page=2&pageSize=20&search=Pasta&difficulty=easy" {
		t.Fatalf("unexpected key format: %q", first)
	}
}

func TestListCacheKey_ClampedPageSizesCollapse(t *testing.T) {
	a := services.ListCacheKey(recipe.ListQuery{Page: 1, PageSize: 150}.Normalized())
	b := services.ListCacheKey(recipe.ListQuery{Page: 1, PageSize: 100}.Normalized())
	if a != b {
		t.Fatalf("expected 150 and 100 to share a key after clamping, got %q and %q", a, b)
	}
}

func TestListCacheKey_SearchCasePreserved(t *testing.T) {
	a := services.ListCacheKey(recipe.ListQuery{Page: 1, PageSize: 10, Search: "pasta"}.Normalized())
	b := services.ListCacheKey(recipe.ListQuery{Page: 1, PageSize: 10, Search: "Pasta"}.Normalized())
	if a == b {
		t.Fatalf("expected different keys for different search casing, both were %q", a)
	}
}
