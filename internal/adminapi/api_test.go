package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/afarenziya/smartdeals/config"
	"github.com/afarenziya/smartdeals/internal/audit"
	"github.com/afarenziya/smartdeals/internal/domain"
	"github.com/afarenziya/smartdeals/internal/mailer"
	"github.com/afarenziya/smartdeals/internal/store"
	"github.com/afarenziya/smartdeals/internal/webserver"
	"github.com/afarenziya/smartdeals/pkg/common"
)

type testEnv struct {
	router *echo.Echo
	store  *store.MemoryStore
	bus    EventBus.Bus
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig
	cfg.Web.Secret = "test-secret"

	s := store.NewMemoryStore()
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.CreateOpr(context.Background(), &domain.SysOpr{
		Username: "admin",
		Password: string(hashed),
		Level:    "super",
		Status:   common.ENABLED,
	}))

	bus := EventBus.New()
	_, err = audit.NewRecorder(bus, s)
	require.NoError(t, err)

	ws := webserver.New(cfg)
	New(cfg, s, bus, mailer.Disabled{}).RegisterRoutes(ws.Router())
	return &testEnv{router: ws.Router(), store: s, bus: bus}
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T) string {
	t.Helper()
	rec := env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.request(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, body["environment"])
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["authenticated"])

	rec = env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "nobody", "password": "admin123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/admin/login", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["authenticated"])
	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "admin", user["username"])
	assert.NotEmpty(t, body["token"])
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	rec := env.request(t, http.MethodPost, "/api/admin/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["authenticated"])
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/x"},
		{http.MethodDelete, "/api/products/x"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPost, "/api/platforms"},
		{http.MethodGet, "/api/contacts"},
	}
	for _, p := range paths {
		rec := env.request(t, p.method, p.path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.request(t, http.MethodPost, "/api/products", token, map[string]interface{}{
		"title":           "Widget",
		"originalPrice":   "100",
		"discountedPrice": "50",
		"platform":        "Amazon",
		"affiliateLink":   "https://amazon.in/widget",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = env.request(t, http.MethodGet, "/api/products?platform=Amazon", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)

	rec = env.request(t, http.MethodGet, "/api/products?platform=Flipkart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))

	rec = env.request(t, http.MethodGet, "/api/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodPut, "/api/products/"+id, token, map[string]interface{}{
		"title": "Widget v2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)
	assert.Equal(t, "Widget v2", updated["title"])
	// partial update keeps the other fields
	assert.Equal(t, "Amazon", updated["platform"])

	rec = env.request(t, http.MethodGet, "/api/analytics/overview", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overview := decodeBody(t, rec)
	assert.InDelta(t, 50.0, overview["averageDiscount"].(float64), 0.01)

	rec = env.request(t, http.MethodDelete, "/api/products/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodDelete, "/api/products/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/products/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// admin operations were recorded on the audit trail
	env.bus.WaitAsync()
	logs := env.store.OprLogs()
	require.NotEmpty(t, logs)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.OptAction)
	}
	assert.Contains(t, actions, "product.create")
	assert.Contains(t, actions, "product.delete")
}

func TestProductValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.request(t, http.MethodPost, "/api/products", token, map[string]interface{}{
		"platform": "Amazon",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid product data", body["message"])
	assert.NotEmpty(t, body["details"])
}

func TestProductListDefaultOrderAndSort(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	for _, p := range []map[string]interface{}{
		{"title": "cheap", "discountedPrice": "10", "platform": "Amazon", "affiliateLink": "https://a"},
		{"title": "mid", "discountedPrice": "50", "platform": "Amazon", "affiliateLink": "https://b"},
		{"title": "pricey", "discountedPrice": "90", "platform": "Amazon", "affiliateLink": "https://c"},
	} {
		rec := env.request(t, http.MethodPost, "/api/products", token, p)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.request(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 3)
	// newest-first default
	assert.Equal(t, "pricey", list[0]["title"])

	rec = env.request(t, http.MethodGet, "/api/products?sortBy=price_low", "", nil)
	list = decodeList(t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, "cheap", list[0]["title"])
	assert.Equal(t, "pricey", list[2]["title"])

	rec = env.request(t, http.MethodGet, "/api/products?minPrice=40&maxPrice=60", "", nil)
	list = decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "mid", list[0]["title"])

	// malformed bound matches nothing rather than erroring
	rec = env.request(t, http.MethodGet, "/api/products?minPrice=abc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))
}

func TestContactFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Ajay", "email": "ajay@example.com", "subject": "Hi", "message": "Nice deals",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["emailSent"])
	assert.NotEmpty(t, body["id"])

	rec = env.request(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Ajay", "email": "not-an-email", "subject": "Hi", "message": "x",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid contact data", decodeBody(t, rec)["message"])

	token := env.login(t)
	rec = env.request(t, http.MethodGet, "/api/contacts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)
}

func TestCategoryCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.request(t, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": "Electronics", "icon": "🛒",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, true, created["isActive"])

	rec = env.request(t, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": "electronics",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.request(t, http.MethodPost, "/api/categories", token, map[string]interface{}{
		"name": "Gadgets", "icon": "http://example.com/logo.png",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	inactive := false
	rec = env.request(t, http.MethodPut, "/api/categories/"+id, token, map[string]interface{}{
		"isActive": inactive,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/categories?active=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec))

	rec = env.request(t, http.MethodGet, "/api/categories", "", nil)
	assert.Len(t, decodeList(t, rec), 1)

	rec = env.request(t, http.MethodDelete, "/api/categories/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodDelete, "/api/categories/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlatformCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	rec := env.request(t, http.MethodPost, "/api/platforms", token, map[string]interface{}{
		"name": "Amazon", "icon": "https://example.com/amazon.png", "color": "#ff9900",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)
	id, _ := created["id"].(string)

	rec = env.request(t, http.MethodPut, "/api/platforms/"+id, token, map[string]interface{}{
		"color": "#000000",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)
	assert.Equal(t, "#000000", updated["color"])
	assert.Equal(t, "Amazon", updated["name"])

	rec = env.request(t, http.MethodGet, "/api/platforms?active=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeList(t, rec), 1)
}
