// Package webserver owns the echo instance: middleware, JSON
// serialization, payload validation and the JWT guard for the admin
// surface.
package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/afarenziya/smartdeals/config"
)

// WebServer wraps the echo instance with the application config.
type WebServer struct {
	cfg  *config.AppConfig
	root *echo.Echo
}

func New(cfg *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = &JsoniterSerializer{}
	e.Validator = &PayloadValidator{validate: validator.New()}
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(ZapLogger())
	return &WebServer{cfg: cfg, root: e}
}

// Router exposes the underlying echo instance for route registration
// and for tests.
func (ws *WebServer) Router() *echo.Echo {
	return ws.root
}

// Start blocks serving HTTP until the server is shut down.
func (ws *WebServer) Start() error {
	addr := fmt.Sprintf("%s:%d", ws.cfg.Web.Host, ws.cfg.Web.Port)
	zap.S().Infof("web server listening on %s", addr)
	return ws.root.Start(addr)
}

// JsoniterSerializer swaps encoding/json for jsoniter on the wire.
type JsoniterSerializer struct{}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func (s *JsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsonAPI.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsonAPI.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}

// PayloadValidator adapts go-playground/validator to echo's Validator
// interface so `validate:` payload tags are enforced on Bind+Validate.
type PayloadValidator struct {
	validate *validator.Validate
}

func (v *PayloadValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ZapLogger logs one line per request through the global zap logger.
func ZapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			zap.L().Info("http request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", res.Status),
				zap.String("remote_ip", c.RealIP()),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
