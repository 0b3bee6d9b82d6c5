package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
	"github.com/culinara/recipe-service/internal/core/ports"
	"github.com/culinara/recipe-service/internal/infrastructure/httpserver"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// RecipeServiceMock is a lightweight mock for ports.RecipeService
type RecipeServiceMock struct {
	CreateRecipeFn func(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error)
	GetRecipeFn    func(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	UpdateRecipeFn func(ctx context.Context, id uuid.UUID, req *recipe.UpdateRecipeRequest) (*recipe.Recipe, error)
	DeleteRecipeFn func(ctx context.Context, id uuid.UUID) error
	ListRecipesFn  func(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error)
}

func (m *RecipeServiceMock) CreateRecipe(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error) {
	if m.CreateRecipeFn != nil {
		return m.CreateRecipeFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *RecipeServiceMock) GetRecipe(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if m.GetRecipeFn != nil {
		return m.GetRecipeFn(ctx, id)
	}
	return nil, recipe.ErrNotFound
}
func (m *RecipeServiceMock) UpdateRecipe(ctx context.Context, id uuid.UUID, req *recipe.UpdateRecipeRequest) (*recipe.Recipe, error) {
	if m.UpdateRecipeFn != nil {
		return m.UpdateRecipeFn(ctx, id, req)
	}
	return nil, recipe.ErrNotFound
}
func (m *RecipeServiceMock) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if m.DeleteRecipeFn != nil {
		return m.DeleteRecipeFn(ctx, id)
	}
	return recipe.ErrNotFound
}
func (m *RecipeServiceMock) ListRecipes(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error) {
	if m.ListRecipesFn != nil {
		return m.ListRecipesFn(ctx, q)
	}
	return &recipe.PageResult{Recipes: []*recipe.Recipe{}, CurrentPage: 1}, nil
}

var _ ports.RecipeService = (*RecipeServiceMock)(nil)

func newTestServer(t *testing.T, svc ports.RecipeService) *httptest.Server {
	t.Helper()
	srv := httpserver.NewServer(&httpserver.ServerConfig{
		Host:         "127.0.0.1",
		Port:         "0",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		IdleTimeout:  time.Second,
	}, logrus.New(), httpserver.ServerDeps{RecipeService: svc})
	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestListRecipes_DefaultsAndQueryParams(t *testing.T) {
	var captured recipe.ListQuery
	svc := &RecipeServiceMock{
		ListRecipesFn: func(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error) {
			captured = q
			return &recipe.PageResult{Recipes: []*recipe.Recipe{}, TotalRecipes: 0, TotalPages: 0, CurrentPage: q.Page}, nil
		},
	}
	ts := newTestServer(t, svc)

	resp, raw := doJSON(t, ts, http.MethodGet, "/recipes?page=2&pageSize=5&search=Pasta&difficulty=easy", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, recipe.ListQuery{Page: 2, PageSize: 5, Search: "Pasta", Difficulty: "easy"}, captured)

	var page recipe.PageResult
	require.NoError(t, json.Unmarshal(raw, &page))
	require.Equal(t, 2, page.CurrentPage)

	// defaults when params absent
	resp, _ = doJSON(t, ts, http.MethodGet, "/recipes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, recipe.ListQuery{Page: 1, PageSize: 10}, captured)
}

func TestListRecipes_StoreFailureReturns500(t *testing.T) {
	svc := &RecipeServiceMock{
		ListRecipesFn: func(ctx context.Context, q recipe.ListQuery) (*recipe.PageResult, error) {
			return nil, errors.New("db down")
		},
	}
	ts := newTestServer(t, svc)

	resp, raw := doJSON(t, ts, http.MethodGet, "/recipes", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "failed to fetch recipes", body["error"])
	require.Equal(t, "db down", body["details"])
}

func TestGetRecipe_InvalidAndMissingIDs(t *testing.T) {
	ts := newTestServer(t, &RecipeServiceMock{})

	resp, _ := doJSON(t, ts, http.MethodGet, "/recipes/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, ts, http.MethodGet, "/recipes/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "recipe not found", body["error"])
}

func TestCreateRecipe(t *testing.T) {
	svc := &RecipeServiceMock{
		CreateRecipeFn: func(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error) {
			return &recipe.Recipe{ID: uuid.New(), Title: req.Title, Ingredients: req.Ingredients}, nil
		},
	}
	ts := newTestServer(t, svc)

	resp, raw := doJSON(t, ts, http.MethodPost, "/recipes", recipe.CreateRecipeRequest{
		Title:        "Bread",
		Ingredients:  []recipe.Ingredient{{Name: "flour"}},
		Instructions: "bake",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created recipe.Recipe
	require.NoError(t, json.Unmarshal(raw, &created))
	require.Equal(t, "Bread", created.Title)
}

func TestCreateRecipe_ValidationFailure(t *testing.T) {
	ts := newTestServer(t, &RecipeServiceMock{})

	resp, raw := doJSON(t, ts, http.MethodPost, "/recipes", recipe.CreateRecipeRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "validation failed", body["error"])
	require.NotEmpty(t, body["details"])
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	ts := newTestServer(t, &RecipeServiceMock{})

	resp, _ := doJSON(t, ts, http.MethodPut, "/recipes/"+uuid.NewString(), recipe.UpdateRecipeRequest{})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteRecipe(t *testing.T) {
	deleted := false
	svc := &RecipeServiceMock{
		DeleteRecipeFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	ts := newTestServer(t, svc)

	resp, raw := doJSON(t, ts, http.MethodDelete, "/recipes/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, deleted)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "recipe deleted successfully", body["message"])
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, &RecipeServiceMock{})

	resp, raw := doJSON(t, ts, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, "healthy", body["status"])
	require.Contains(t, body, "uptime_seconds")
	require.Contains(t, body, "memory")
}
