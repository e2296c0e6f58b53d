package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/afarenziya/smartdeals/internal/catalog"
)

// analyticsOverview serves the dashboard rollup. The store returns
// products in insertion order so the recently-added slice comes out
// most-recent-first.
func (api *API) analyticsOverview(c echo.Context) error {
	products, err := api.store.ListProductsChronological(c.Request().Context())
	if err != nil {
		return serverError(c, "Failed to fetch analytics data", err)
	}
	return c.JSON(http.StatusOK, catalog.ComputeOverview(products))
}
