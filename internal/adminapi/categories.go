package adminapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/store"
)

type categoryPayload struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
}

type categoryUpdatePayload struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
}

func (api *API) listCategories(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	categories, err := api.store.ListCategories(c.Request().Context(), activeOnly)
	if err != nil {
		return serverError(c, "Failed to fetch categories", err)
	}
	return c.JSON(http.StatusOK, categories)
}

func (api *API) getCategory(c echo.Context) error {
	category, err := api.store.GetCategory(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Category not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to fetch category", err)
	}
	return c.JSON(http.StatusOK, category)
}

func (api *API) createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
	}
	if _, err := domain.ParseIcon(payload.Icon); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}
	category := domain.Category{
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Icon:        payload.Icon,
		IsActive:    isActive,
	}
	err := api.store.CreateCategory(c.Request().Context(), &category)
	if errors.Is(err, store.ErrDuplicate) {
		return fail(c, http.StatusConflict, "Category with this name already exists", nil)
	} else if err != nil {
		return serverError(c, "Failed to create category", err)
	}
	api.audit(c, "category.create", fmt.Sprintf("created category %s (%s)", category.ID, category.Name))
	return c.JSON(http.StatusCreated, category)
}

func (api *API) updateCategory(c echo.Context) error {
	var payload categoryUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
	}
	if payload.Icon != nil {
		if _, err := domain.ParseIcon(*payload.Icon); err != nil {
			return fail(c, http.StatusBadRequest, "Invalid category data", err.Error())
		}
	}

	patch := store.CategoryPatch{
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
		IsActive:    payload.IsActive,
	}
	category, err := api.store.UpdateCategory(c.Request().Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Category not found", nil)
	} else if errors.Is(err, store.ErrDuplicate) {
		return fail(c, http.StatusConflict, "Category with this name already exists", nil)
	} else if err != nil {
		return serverError(c, "Failed to update category", err)
	}
	api.audit(c, "category.update", fmt.Sprintf("updated category %s", category.ID))
	return c.JSON(http.StatusOK, category)
}

func (api *API) deleteCategory(c echo.Context) error {
	id := c.Param("id")
	err := api.store.DeleteCategory(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Category not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to delete category", err)
	}
	api.audit(c, "category.delete", fmt.Sprintf("deleted category %s", id))
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Category deleted successfully"})
}
