package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/culinara/recipe-service/internal/core/domain/recipe"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (s *Server) createRecipe(c echo.Context) error {
	var req recipe.CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return respondError(c, http.StatusBadRequest, "validation failed", err)
	}
	rec, err := s.recipeSvc.CreateRecipe(c.Request().Context(), &req)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "failed to create recipe", err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (s *Server) listRecipes(c echo.Context) error {
	q := recipe.ListQuery{
		Page:       recipe.DefaultPage,
		PageSize:   recipe.DefaultPageSize,
		Search:     c.QueryParam("search"),
		Difficulty: c.QueryParam("difficulty"),
	}
	if p := c.QueryParam("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			q.Page = v
		}
	}
	if ps := c.QueryParam("pageSize"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil {
			q.PageSize = v
		}
	}

	page, err := s.recipeSvc.ListRecipes(c.Request().Context(), q)
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "failed to fetch recipes", err)
	}
	return c.JSON(http.StatusOK, page)
}

func (s *Server) getRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid recipe ID", err)
	}
	rec, err := s.recipeSvc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "recipe not found", err)
		}
		return respondError(c, http.StatusInternalServerError, "failed to fetch recipe", err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) updateRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid recipe ID", err)
	}
	var req recipe.UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return respondError(c, http.StatusBadRequest, "validation failed", err)
	}
	rec, err := s.recipeSvc.UpdateRecipe(c.Request().Context(), id, &req)
	if err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "recipe not found", err)
		}
		return respondError(c, http.StatusBadRequest, "failed to update recipe", err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusBadRequest, "invalid recipe ID", err)
	}
	if err := s.recipeSvc.DeleteRecipe(c.Request().Context(), id); err != nil {
		if errors.Is(err, recipe.ErrNotFound) {
			return respondError(c, http.StatusNotFound, "recipe not found", err)
		}
		return respondError(c, http.StatusInternalServerError, "failed to delete recipe", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "recipe deleted successfully"})
}
