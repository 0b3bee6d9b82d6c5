package recipe

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrNotFound is returned when no recipe exists for the given ID.
var ErrNotFound = errors.New("recipe not found")

type Recipe struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Ingredients  Ingredients    `json:"ingredients" db:"ingredients"`
	Utensils     pq.StringArray `json:"utensils" db:"utensils"`
	Difficulty   string         `json:"difficulty" db:"difficulty"`
	TotalTime    string         `json:"totalTime" db:"total_time"`
	Instructions string         `json:"instructions" db:"instructions"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// Ingredients is stored as a JSONB column.
type Ingredients []Ingredient

func (i Ingredients) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *Ingredients) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	case nil:
		*i = nil
		return nil
	default:
		return fmt.Errorf("unsupported ingredients column type %T", src)
	}
}

// CreateRecipeRequest represents the request to create a new recipe
type CreateRecipeRequest struct {
	Title        string       `json:"title"`
	Ingredients  []Ingredient `json:"ingredients"`
	Utensils     []string     `json:"utensils"`
	Difficulty   string       `json:"difficulty"`
	TotalTime    string       `json:"totalTime"`
	Instructions string       `json:"instructions"`
}

func (r *CreateRecipeRequest) Validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	if len(r.Ingredients) == 0 {
		return errors.New("at least one ingredient is required")
	}
	for idx, ing := range r.Ingredients {
		if ing.Name == "" {
			return fmt.Errorf("ingredient %d: name is required", idx)
		}
	}
	if r.Instructions == "" {
		return errors.New("instructions are required")
	}
	return nil
}

// UpdateRecipeRequest represents a partial update; nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Title        *string       `json:"title,omitempty"`
	Ingredients  *[]Ingredient `json:"ingredients,omitempty"`
	Utensils     *[]string     `json:"utensils,omitempty"`
	Difficulty   *string       `json:"difficulty,omitempty"`
	TotalTime    *string       `json:"totalTime,omitempty"`
	Instructions *string       `json:"instructions,omitempty"`
}

func (r *UpdateRecipeRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return errors.New("title cannot be empty")
	}
	if r.Ingredients != nil {
		if len(*r.Ingredients) == 0 {
			return errors.New("at least one ingredient is required")
		}
		for idx, ing := range *r.Ingredients {
			if ing.Name == "" {
				return fmt.Errorf("ingredient %d: name is required", idx)
			}
		}
	}
	if r.Instructions != nil && *r.Instructions == "" {
		return errors.New("instructions cannot be empty")
	}
	return nil
}
