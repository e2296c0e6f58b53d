package adminapi

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/afarenziya/smartdeals/internal/catalog"
	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/store"
)

type productPayload struct {
	Title              string `json:"title" validate:"required,min=1,max=500"`
	Description        string `json:"description"`
	OriginalPrice      string `json:"originalPrice"`
	DiscountedPrice    string `json:"discountedPrice"`
	ImageUrl           string `json:"imageUrl"`
	AffiliateLink      string `json:"affiliateLink" validate:"required,min=1"`
	Platform           string `json:"platform" validate:"required,min=1"`
	Category           string `json:"category"`
	Featured           bool   `json:"featured"`
	AutoFetchPrice     bool   `json:"autoFetchPrice"`
	Rating             string `json:"rating"`
	ReviewCount        string `json:"reviewCount"`
	DiscountPercentage string `json:"discountPercentage"`
}

type productUpdatePayload struct {
	Title              *string `json:"title" validate:"omitempty,min=1,max=500"`
	Description        *string `json:"description"`
	OriginalPrice      *string `json:"originalPrice"`
	DiscountedPrice    *string `json:"discountedPrice"`
	ImageUrl           *string `json:"imageUrl"`
	AffiliateLink      *string `json:"affiliateLink" validate:"omitempty,min=1"`
	Platform           *string `json:"platform" validate:"omitempty,min=1"`
	Category           *string `json:"category"`
	Featured           *bool   `json:"featured"`
	AutoFetchPrice     *bool   `json:"autoFetchPrice"`
	Rating             *string `json:"rating"`
	ReviewCount        *string `json:"reviewCount"`
	DiscountPercentage *string `json:"discountPercentage"`
}

// listProducts serves the catalog query. With no query parameters at
// all it returns the full collection newest-first without running the
// predicate pass; otherwise the parameters are parsed into a filter
// and handed to the query engine.
func (api *API) listProducts(c echo.Context) error {
	platform := c.QueryParam("platform")
	category := c.QueryParam("category")
	search := c.QueryParam("search")
	featured := c.QueryParam("featured")
	minPrice := c.QueryParam("minPrice")
	maxPrice := c.QueryParam("maxPrice")
	sortBy := c.QueryParam("sortBy")

	if platform == "" && category == "" && search == "" && featured == "" &&
		minPrice == "" && maxPrice == "" && sortBy == "" {
		products, err := api.store.ListProducts(c.Request().Context())
		if err != nil {
			return serverError(c, "Failed to fetch products", err)
		}
		return c.JSON(http.StatusOK, products)
	}

	filter := catalog.Filter{
		Platform: platform,
		Category: category,
		Search:   search,
		SortBy:   sortBy,
	}
	switch featured {
	case "true":
		v := true
		filter.Featured = &v
	case "false":
		v := false
		filter.Featured = &v
	}
	if minPrice != "" {
		v := parsePriceParam(minPrice)
		filter.MinPrice = &v
	}
	if maxPrice != "" {
		v := parsePriceParam(maxPrice)
		filter.MaxPrice = &v
	}

	products, err := api.store.ListProductsChronological(c.Request().Context())
	if err != nil {
		return serverError(c, "Failed to fetch products", err)
	}
	return c.JSON(http.StatusOK, catalog.Query(products, filter))
}

// parsePriceParam keeps the permissive semantics of the storefront: a
// malformed bound becomes NaN, which matches nothing, rather than a
// request error.
func parsePriceParam(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func (api *API) getProduct(c echo.Context) error {
	p, err := api.store.GetProduct(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to fetch product", err)
	}
	return c.JSON(http.StatusOK, p)
}

func (api *API) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product data", err.Error())
	}

	p := domain.Product{
		Title:              strings.TrimSpace(payload.Title),
		Description:        payload.Description,
		OriginalPrice:      payload.OriginalPrice,
		DiscountedPrice:    payload.DiscountedPrice,
		ImageUrl:           payload.ImageUrl,
		AffiliateLink:      strings.TrimSpace(payload.AffiliateLink),
		Platform:           strings.TrimSpace(payload.Platform),
		Category:           payload.Category,
		Featured:           payload.Featured,
		AutoFetchPrice:     payload.AutoFetchPrice,
		Rating:             payload.Rating,
		ReviewCount:        payload.ReviewCount,
		DiscountPercentage: payload.DiscountPercentage,
	}
	if err := api.store.CreateProduct(c.Request().Context(), &p); err != nil {
		return serverError(c, "Failed to create product", err)
	}
	api.audit(c, "product.create", fmt.Sprintf("created product %s (%s)", p.ID, p.Title))
	return c.JSON(http.StatusCreated, p)
}

func (api *API) updateProduct(c echo.Context) error {
	var payload productUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product data", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid product data", err.Error())
	}

	patch := store.ProductPatch{
		Title:              payload.Title,
		Description:        payload.Description,
		OriginalPrice:      payload.OriginalPrice,
		DiscountedPrice:    payload.DiscountedPrice,
		ImageUrl:           payload.ImageUrl,
		AffiliateLink:      payload.AffiliateLink,
		Platform:           payload.Platform,
		Category:           payload.Category,
		Featured:           payload.Featured,
		AutoFetchPrice:     payload.AutoFetchPrice,
		Rating:             payload.Rating,
		ReviewCount:        payload.ReviewCount,
		DiscountPercentage: payload.DiscountPercentage,
	}
	p, err := api.store.UpdateProduct(c.Request().Context(), c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to update product", err)
	}
	api.audit(c, "product.update", fmt.Sprintf("updated product %s", p.ID))
	return c.JSON(http.StatusOK, p)
}

func (api *API) deleteProduct(c echo.Context) error {
	id := c.Param("id")
	err := api.store.DeleteProduct(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Product not found", nil)
	} else if err != nil {
		return serverError(c, "Failed to delete product", err)
	}
	api.audit(c, "product.delete", fmt.Sprintf("deleted product %s", id))
	return c.JSON(http.StatusOK, map[string]interface{}{"message": "Product deleted successfully"})
}
