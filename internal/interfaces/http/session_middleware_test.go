package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	apphttp "github.com/jhoicas/Farmaventa-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCookieName = "admin_session"
	testAdminID    = "00000000-0000-0000-0000-000000000001"
	testAdminEmail = "ops@example.com"
)

var testSessionCfg = apphttp.SessionConfig{
	CookieName: testCookieName,
	TTLHours:   24,
}

// fakeChecker concede exactamente los permisos del mapa.
type fakeChecker struct {
	granted map[string]bool
}

func (f *fakeChecker) Has(_, _, permission string) bool { return f.granted[permission] }

// buildTestApp construye una aplicación Fiber mínima con:
//   - SessionMiddleware para decodificar la cookie y cargar locals
//   - RequirePermission para autorizar la sección
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(permission string, checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionMiddleware(testSessionCfg),
		apphttp.RequirePermission(permission, checker),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"admin": apphttp.GetAdminID(c),
			})
		},
	)
	return app
}

// sessionCookie serializa un SessionPayload como valor de cookie
// (JSON URL-encoded, igual que writeSessionCookie).
func sessionCookie(t *testing.T, payload dto.SessionPayload) *http.Cookie {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: url.QueryEscape(string(raw))}
}

// doRequest lanza GET /protected con la cookie indicada (nil = sin cookie).
func doRequest(t *testing.T, app *fiber.App, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func loggedInPayload() dto.SessionPayload {
	return dto.SessionPayload{
		IsLoggedIn: true,
		Email:      testAdminEmail,
		Name:       "Operaciones",
		UID:        testAdminID,
		Role:       "admin",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionMiddleware + RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sesión válida con el permiso concedido → HTTP 200.
func TestRequirePermission_PermisoConcedido(t *testing.T) {
	app := buildTestApp("orders", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, sessionCookie(t, loggedInPayload()))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testAdminID, body["admin"], "la identidad viene de la cookie")
}

// Caso 2: sesión válida sin el permiso → HTTP 403 PERMISSION_DENIED.
func TestRequirePermission_PermisoDenegado(t *testing.T) {
	app := buildTestApp("settings", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, sessionCookie(t, loggedInPayload()))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PERMISSION_DENIED")
}

// Caso 3: sin cookie → HTTP 401 NO_SESSION.
func TestSessionMiddleware_SinCookie(t *testing.T) {
	app := buildTestApp("orders", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_SESSION")
}

// Caso 4: cookie con JSON malformado → se trata como sesión inexistente (401).
func TestSessionMiddleware_CookieMalformada(t *testing.T) {
	app := buildTestApp("orders", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, &http.Cookie{Name: testCookieName, Value: "{no-es-json"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: payload con isLoggedIn=false → 401 aunque el JSON sea válido.
func TestSessionMiddleware_SesionCerrada(t *testing.T) {
	app := buildTestApp("orders", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, sessionCookie(t, dto.SessionPayload{IsLoggedIn: false, UID: testAdminID}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: payload sin uid → 401 (no hay a quién resolverle permisos).
func TestSessionMiddleware_SinUID(t *testing.T) {
	app := buildTestApp("orders", &fakeChecker{granted: map[string]bool{"orders": true}})
	resp := doRequest(t, app, sessionCookie(t, dto.SessionPayload{IsLoggedIn: true, Email: testAdminEmail}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests introspección de sesión — siempre 200, nunca revela errores de parseo.
// ──────────────────────────────────────────────────────────────────────────────

func buildSessionApp() *fiber.App {
	app := fiber.New()
	h := apphttp.NewAdminHandler(nil, nil, testSessionCfg)
	app.Get("/api/admin/session", h.Session)
	return app
}

func TestSession_ConCookieValida(t *testing.T) {
	app := buildSessionApp()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	req.AddCookie(sessionCookie(t, loggedInPayload()))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SessionPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsLoggedIn)
	assert.Equal(t, testAdminEmail, body.Email)
	assert.Equal(t, testAdminID, body.UID)
}

func TestSession_SinCookie(t *testing.T) {
	app := buildSessionApp()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "la introspección nunca falla")

	var body dto.SessionPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.IsLoggedIn)
	assert.Empty(t, body.UID)
}

func TestSession_CookieMalformada(t *testing.T) {
	app := buildSessionApp()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "%%%"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SessionPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.IsLoggedIn, "cookie ilegible se reporta como sesión cerrada")
}
