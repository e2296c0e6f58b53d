// Package adminapi implements the HTTP JSON endpoints consumed by the
// storefront front end: the public catalog reads, the contact form and
// the JWT-guarded admin CRUD surface.
package adminapi

import (
	"net/http"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/audit"
	"github.com/afarenziya/smartdeals/internal/mailer"
	"github.com/afarenziya/smartdeals/internal/store"
	"github.com/afarenziya/smartdeals/internal/webserver"
)

// API bundles the dependencies of the HTTP handlers. Everything is
// injected so tests can run against an isolated in-memory store.
type API struct {
	cfg    *config.AppConfig
	store  store.Store
	bus    EventBus.Bus
	mailer mailer.Mailer
}

func New(cfg *config.AppConfig, s store.Store, bus EventBus.Bus, m mailer.Mailer) *API {
	return &API{cfg: cfg, store: s, bus: bus, mailer: m}
}

// RegisterRoutes attaches every endpoint to the echo instance. Admin
// mutations and the contacts listing sit behind the JWT guard; the
// login route is additionally rate limited.
func (api *API) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/health", api.health)
	g.GET("/products", api.listProducts)
	g.GET("/products/:id", api.getProduct)
	g.GET("/categories", api.listCategories)
	g.GET("/categories/:id", api.getCategory)
	g.GET("/platforms", api.listPlatforms)
	g.GET("/platforms/:id", api.getPlatform)
	g.GET("/analytics/overview", api.analyticsOverview)
	g.POST("/contact", api.submitContact)

	loginLimiter := middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(5)))
	g.POST("/admin/login", api.login, loginLimiter)
	g.POST("/admin/logout", api.logout)

	guard := webserver.AdminJWT(api.cfg)
	g.POST("/products", api.createProduct, guard)
	g.PUT("/products/:id", api.updateProduct, guard)
	g.DELETE("/products/:id", api.deleteProduct, guard)
	g.POST("/categories", api.createCategory, guard)
	g.PUT("/categories/:id", api.updateCategory, guard)
	g.DELETE("/categories/:id", api.deleteCategory, guard)
	g.POST("/platforms", api.createPlatform, guard)
	g.PUT("/platforms/:id", api.updatePlatform, guard)
	g.DELETE("/platforms/:id", api.deletePlatform, guard)
	g.GET("/contacts", api.listContacts, guard)
}

func (api *API) audit(c echo.Context, action, desc string) {
	audit.Publish(api.bus, webserver.OperatorName(c), action, desc)
}

// fail writes the error body. The details value is included verbatim
// on validation failures, matching the storefront's wire contract.
func fail(c echo.Context, status int, message string, details interface{}) error {
	body := map[string]interface{}{"message": message}
	if details != nil {
		body["details"] = details
	}
	return c.JSON(status, body)
}

// serverError logs the cause and returns a generic 500 without
// leaking internals.
func serverError(c echo.Context, message string, err error) error {
	zap.L().Error(message, zap.String("path", c.Path()), zap.Error(err))
	return fail(c, http.StatusInternalServerError, message, nil)
}
