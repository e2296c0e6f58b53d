package adminapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (api *API) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": api.cfg.System.Environ,
	})
}
