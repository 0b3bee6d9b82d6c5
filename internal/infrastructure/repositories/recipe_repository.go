package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
	"github.com/culinara/recipe-service/internal/core/ports"
	"github.com/culinara/recipe-service/internal/infrastructure/db"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RecipeRepository implements the recipe repository interface on Postgres.
type RecipeRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(database *db.Database, logger *logrus.Logger) ports.RecipeRepository {
	return &RecipeRepository{
		db:     database,
		logger: logger,
	}
}

// Create creates a new recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	query := `
		INSERT INTO recipes (id, title, ingredients, utensils, difficulty, total_time, instructions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.DB.ExecContext(ctx, query,
		rec.ID, rec.Title, rec.Ingredients, rec.Utensils, rec.Difficulty,
		rec.TotalTime, rec.Instructions, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

// GetByID retrieves a recipe by ID
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	query := `
		SELECT id, title, ingredients, utensils, difficulty, total_time, instructions, created_at, updated_at
		FROM recipes
		WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &rec, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, recipe.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	return &rec, nil
}

// Update updates an existing recipe
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $2, ingredients = $3, utensils = $4, difficulty = $5,
		    total_time = $6, instructions = $7, updated_at = $8
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		rec.ID, rec.Title, rec.Ingredients, rec.Utensils, rec.Difficulty,
		rec.TotalTime, rec.Instructions, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return recipe.ErrNotFound
	}

	return nil
}

// Delete deletes a recipe by ID
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recipes WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return recipe.ErrNotFound
	}

	return nil
}

// List retrieves recipes matching the filter, sorted by title ascending,
// with skip/limit pagination.
func (r *RecipeRepository) List(ctx context.Context, search, difficulty string, limit, offset int) ([]*recipe.Recipe, error) {
	where, args := buildRecipeFilter(search, difficulty)
	query := fmt.Sprintf(`
		SELECT id, title, ingredients, utensils, difficulty, total_time, instructions, created_at, updated_at
		FROM recipes
		%s
		ORDER BY title ASC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	recipes := []*recipe.Recipe{}
	if err := r.db.DB.SelectContext(ctx, &recipes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

// Count returns the total number of recipes matching the filter, ignoring
// pagination.
func (r *RecipeRepository) Count(ctx context.Context, search, difficulty string) (int, error) {
	where, args := buildRecipeFilter(search, difficulty)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM recipes %s`, where)

	var count int
	if err := r.db.DB.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	return count, nil
}

// buildRecipeFilter assembles the shared WHERE clause for List and Count.
// A search term matches the title or any ingredient name as a case-insensitive
// substring; difficulty is ANDed in the same way when present.
func buildRecipeFilter(search, difficulty string) (string, []any) {
	var conds []string
	var args []any

	if search != "" {
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%d OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(ingredients) AS ing
				WHERE ing->>'name' ILIKE $%d))`, len(args)-1, len(args)))
	}
	if difficulty != "" {
		args = append(args, "%"+difficulty+"%")
		conds = append(conds, fmt.Sprintf(`difficulty ILIKE $%d`, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
