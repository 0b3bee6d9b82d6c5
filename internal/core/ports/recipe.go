package ports

import (
	"context"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
	"github.com/google/uuid"
)

// RecipeRepository defines the interface for recipe data operations.
// List and Count take the same filter; absence of a criterion matches
// everything, and pattern criteria match case-insensitive substrings.
type RecipeRepository interface {
	Create(ctx context.Context, r *recipe.Recipe) error
	GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	Update(ctx context.Context, r *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns recipes matching search/difficulty, sorted by title
	// ascending, skipping offset records and returning at most limit.
	List(ctx context.Context, search, difficulty string, limit, offset int) ([]*recipe.Recipe, error)
	// Count returns the total number of matching recipes, ignoring paging.
	Count(ctx context.Context, search, difficulty string) (int, error)
}

// RecipeService defines the interface for recipe business logic.
type RecipeService interface {
	CreateRecipe(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *recipe.UpdateRecipeRequest) (*recipe.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	// ListRecipes serves one page of recipes, cache-aside over the repository.
	ListRecipes(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error)
}
