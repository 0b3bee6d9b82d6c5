package recipe_test

import (
	"testing"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
)

func TestNormalized_Defaults(t *testing.T) {
	q := recipe.ListQuery{}.Normalized()
	if q.Page != 1 {
		t.Fatalf("expected default page 1, got %d", q.Page)
	}
	if q.PageSize != 10 {
		t.Fatalf("expected default page size 10, got %d", q.PageSize)
	}
}

func TestNormalized_PageSizeClamped(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{500, 100},
		{150, 100},
		{100, 100},
		{0, 10},
		{-3, 10},
		{1, 1},
	}
	for _, tc := range cases {
		q := recipe.ListQuery{Page: 1, PageSize: tc.in}.Normalized()
		if q.PageSize != tc.want {
			t.Fatalf("pageSize %d: expected %d, got %d", tc.in, tc.want, q.PageSize)
		}
	}
}

func TestNormalized_PageNotClamped(t *testing.T) {
	// Large pages are legal; only non-positive values are defaulted.
	q := recipe.ListQuery{Page: 9999, PageSize: 10}.Normalized()
	if q.Page != 9999 {
		t.Fatalf("expected page 9999, got %d", q.Page)
	}
	q = recipe.ListQuery{Page: -1, PageSize: 10}.Normalized()
	if q.Page != 1 {
		t.Fatalf("expected page 1, got %d", q.Page)
	}
}

func TestOffset(t *testing.T) {
	q := recipe.ListQuery{Page: 3, PageSize: 10}
	if q.Offset() != 20 {
		t.Fatalf("expected offset 20, got %d", q.Offset())
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{25, 10, 3},
		{10, 10, 1},
		{11, 10, 2},
		{1, 100, 1},
	}
	for _, tc := range cases {
		if got := recipe.PageCount(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("PageCount(%d, %d): expected %d, got %d", tc.total, tc.pageSize, tc.want, got)
		}
	}
}
