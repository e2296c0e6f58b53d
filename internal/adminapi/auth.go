package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/afarenziya/smartdeals/internal/store"
	"github.com/afarenziya/smartdeals/internal/webserver"
	"github.com/afarenziya/smartdeals/pkg/common"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the submitted credentials against the seeded operator
// account and issues a signed token. All admin mutations and the
// contacts listing require that token; nothing is trusted from
// client-side state.
func (api *API) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Username and password are required", nil)
	}
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "Username and password are required", nil)
	}

	opr, err := api.store.GetOprByUsername(c.Request().Context(), payload.Username)
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
	} else if err != nil {
		return serverError(c, "Authentication failed", err)
	}
	if opr.Status != common.ENABLED {
		return fail(c, http.StatusUnauthorized, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(opr.Password), []byte(payload.Password)); err != nil {
		zap.L().Warn("failed admin login attempt",
			zap.String("username", payload.Username), zap.String("remote_ip", c.RealIP()))
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"message":       "Invalid credentials",
			"authenticated": false,
		})
	}

	token, err := webserver.CreateAdminToken(api.cfg, opr.Username, opr.Level)
	if err != nil {
		return serverError(c, "Authentication failed", err)
	}
	if err := api.store.TouchOprLogin(c.Request().Context(), opr.ID); err != nil {
		zap.L().Warn("failed to update last login", zap.Error(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Login successful",
		"authenticated": true,
		"user":          map[string]string{"username": opr.Username},
		"token":         token,
	})
}

// logout is a stateless acknowledgement; token invalidation happens by
// expiry on the client side.
func (api *API) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Logout successful",
		"authenticated": false,
	})
}
