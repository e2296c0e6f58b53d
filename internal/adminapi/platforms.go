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

type platformPayload struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Icon     string `json:"icon"`
	Color    string `json:"color" validate:"omitempty,max=64"`
	IsActive *bool  `json:"isActive"`
}

type platformUpdatePayload struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Icon     *string `json:"icon"`
	Color    *string `json:"color" validate:"omitempty,max=64"`
	IsActive *bool   `json:"isActive"`
}

func (api *API) listPlatforms(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	platforms, err := api.store.ListPlatforms(c.Request().Context(), activeOnly)
	if err != nil {
		return serverError(c, "Failed to fetch platforms", err)
	}
	return c.JSON(http.StatusOK, platforms)
}

func (api *API) getPlatform(c echo.Context) error {
	platform, err := api.store.GetPlatform(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Platform not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to fetch platform", err)
	}
	return c.JSON(http.StatusOK, platform)
}

func (api *API) createPlatform(c echo.Context) error {
	var payload platformPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
	}
	if _, err := domain.ParseIcon(payload.Icon); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
	}

	isActive := true
	if payload.IsActive != nil {
		isActive = *payload.IsActive
	}
	platform := domain.Platform{
		Name:     strings.TrimSpace(payload.Name),
		Icon:     payload.Icon,
		Color:    payload.Color,
		IsActive: isActive,
	}
	err := api.store.CreatePlatform(c.Request().Context(), &platform)
	if errors.Is(err, store.ErrDuplicate) {
		return fail(c, http.StatusConflict, "Platform with this name already exists", nil)
	} else if err != nil {
		return serverError(c, "Failed to create platform", err)
	}
	api.audit(c, "platform.create", fmt.Sprintf("created platform %s (%s)", platform.ID, platform.Name))
	return c.JSON(http.StatusCreated, platform)
}

func (api *API) updatePlatform(c echo.Context) error {
	var payload platformUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
	}
	if payload.Icon != nil {
		if _, err := domain.ParseIcon(*payload.Icon); err != nil {
			return fail(c, http.StatusBadRequest, "Invalid platform data", err.Error())
		}
	}

	patch := store.PlatformPatch{
		Name:     payload.Name,
		Icon:     payload.Icon,
		Color:    payload.Color,
		IsActive: payload.IsActive,
	}
	platform, err := api.store.UpdatePlatform(c.Request().Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Platform not found", nil)
	} else if errors.Is(err, store.ErrDuplicate) {
		return fail(c, http.StatusConflict, "Platform with this name already exists", nil)
	} else if err != nil {
		return serverError(c, "Failed to update platform", err)
	}
	api.audit(c, "platform.update", fmt.Sprintf("updated platform %s", platform.ID))
	return c.JSON(http.StatusOK, platform)
}

func (api *API) deletePlatform(c echo.Context) error {
	id := c.Param("id")
	err := api.store.DeletePlatform(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Platform not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to delete platform", err)
	}
	api.audit(c, "platform.delete", fmt.Sprintf("deleted platform %s", id))
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Platform deleted successfully"})
}
