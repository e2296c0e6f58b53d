package webserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/afarenziya/smartdeals/config"
)

// AdminClaims is the token payload for an authenticated operator.
type AdminClaims struct {
	Username string `json:"usr"`
	Level    string `json:"lvl"`
	jwt.RegisteredClaims
}

// CreateAdminToken issues a signed token for the operator. Token
// lifetime follows web.jwt_expire (hours), mirroring the 24h window
// the storefront client previously self-asserted.
func CreateAdminToken(cfg *config.AppConfig, username, level string) (string, error) {
	expire := time.Duration(cfg.Web.JwtExpire) * time.Hour
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	claims := AdminClaims{
		Username: username,
		Level:    level,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.System.AppName,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Web.Secret))
}

// AdminJWT guards the admin mutation and sensitive-read routes. The
// login endpoint is the only way to obtain a token; nothing is trusted
// from the client beyond it.
func AdminJWT(cfg *config.AppConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Web.Secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(AdminClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		},
	})
}

// OperatorName extracts the operator username from the verified token,
// empty when the route is unauthenticated.
func OperatorName(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return ""
	}
	return claims.Username
}
