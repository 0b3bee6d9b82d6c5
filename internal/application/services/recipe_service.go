package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
	"github.com/culinara/recipe-service/internal/core/ports"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	listCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipe_list_cache_hits_total",
		Help: "The number of recipe list requests served from the cache",
	})
	listCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipe_list_cache_misses_total",
		Help: "The number of recipe list requests served from the store",
	})
	listCacheEvictions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recipe_list_cache_evictions_total",
		Help: "The number of successful coarse evictions of cached list pages",
	})
)

func init() {
	prometheus.MustRegister(listCacheHits)
	prometheus.MustRegister(listCacheMisses)
	prometheus.MustRegister(listCacheEvictions)
}

// RecipeService implements recipe business logic with a cache-aside list
// path: cached pages are read before the store is queried, and every
// successful mutation coarsely evicts all cached pages. Cache failures are
// logged and absorbed; they never fail the request.
type RecipeService struct {
	repo   ports.RecipeRepository
	cache  ports.Cache
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRecipeService(repo ports.RecipeRepository, cache ports.Cache, ttl time.Duration, logger *logrus.Logger) ports.RecipeService {
	return &RecipeService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RecipeService) CreateRecipe(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error) {
	now := time.Now()
	rec := &recipe.Recipe{
		ID:           uuid.New(),
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Utensils:     req.Utensils,
		Difficulty:   req.Difficulty,
		TotalTime:    req.TotalTime,
		Instructions: req.Instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"title": req.Title}).WithError(err).Error("failed to create recipe in repo")
		}
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.invalidateListPages(ctx)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": rec.ID, "title": rec.Title}).Info("recipe created")
	}
	return rec, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *recipe.UpdateRecipeRequest) (*recipe.Recipe, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRecipeUpdates(rec, req)
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rec); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"id": id}).WithError(err).Error("failed to update recipe in repo")
		}
		return nil, err
	}
	s.invalidateListPages(ctx)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": id}).Info("recipe updated")
	}
	return rec, nil
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListPages(ctx)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"id": id}).Info("recipe deleted")
	}
	return nil
}

// ListRecipes serves one page of recipes. The cache is consulted first; a
// readable hit is returned without touching the store. A miss, an unreadable
// entry, or a cache read failure falls through to the store, and the shaped
// page is written back best-effort under the derived key.
func (s *RecipeService) ListRecipes(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error) {
	nq := q.Normalized()
	key := ListCacheKey(nq)

	if s.cache != nil {
		b, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			if s.logger != nil {
				s.logger.WithError(err).Warn("cache read failed, falling back to store")
			}
		} else if ok {
			var page recipe.PageResult
			if err := json.Unmarshal(b, &page); err == nil {
				listCacheHits.Inc()
				return &page, nil
			}
			// unreadable entry, treat as a miss
		}
		listCacheMisses.Inc()
	}

	recipes, err := s.repo.List(ctx, nq.Search, nq.Difficulty, nq.PageSize, nq.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	// Count is a separate query; under concurrent writes it may disagree
	// with the page contents.
	total, err := s.repo.Count(ctx, nq.Search, nq.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to count recipes: %w", err)
	}

	page := &recipe.PageResult{
		Recipes:      recipes,
		TotalRecipes: total,
		TotalPages:   recipe.PageCount(total, nq.PageSize),
		CurrentPage:  nq.Page,
	}

	if s.cache != nil {
		if b, err := json.Marshal(page); err == nil {
			if err := s.cache.Set(ctx, key, b, s.ttl); err != nil && s.logger != nil {
				s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("failed to cache recipe list page")
			}
		}
	}

	return page, nil
}

// invalidateListPages coarsely evicts every cached list page. It does not
// target only the pages whose results changed; one attempt, failures logged.
func (s *RecipeService) invalidateListPages(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, listCachePattern); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to evict cached recipe list pages")
		}
		return
	}
	listCacheEvictions.Inc()
}

// applyRecipeUpdates applies the non-nil fields from the request to the recipe.
func applyRecipeUpdates(rec *recipe.Recipe, req *recipe.UpdateRecipeRequest) {
	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Ingredients != nil {
		rec.Ingredients = *req.Ingredients
	}
	if req.Utensils != nil {
		rec.Utensils = *req.Utensils
	}
	if req.Difficulty != nil {
		rec.Difficulty = *req.Difficulty
	}
	if req.TotalTime != nil {
		rec.TotalTime = *req.TotalTime
	}
	if req.Instructions != nil {
		rec.Instructions = *req.Instructions
	}
}

var _ ports.RecipeService = (*RecipeService)(nil)
