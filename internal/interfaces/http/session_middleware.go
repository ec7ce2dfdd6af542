package http

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
)

// Locals keys para la identidad del administrador en Fiber.
const (
	LocalAdminID    = "admin_id"
	LocalAdminEmail = "admin_email"
	LocalAdminRole  = "admin_role"
)

// SessionConfig parámetros de la cookie de sesión del panel.
type SessionConfig struct {
	CookieName string
	TTLHours   int
	Secure     bool // true fuera de development
}

// readSession decodifica la cookie de sesión: JSON URL-encoded (las comillas
// y comas del JSON no son bytes válidos en un cookie-value). Una cookie
// ausente, ilegible o con isLoggedIn=false se trata como sesión inexistente.
func readSession(c *fiber.Ctx, cookieName string) *dto.SessionPayload {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return nil
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	var payload dto.SessionPayload
	if err := json.Unmarshal([]byte(decoded), &payload); err != nil {
		return nil
	}
	if !payload.IsLoggedIn || payload.UID == "" {
		return nil
	}
	return &payload
}

// writeSessionCookie serializa el payload y lo emite como cookie HTTP-only.
func writeSessionCookie(c *fiber.Ctx, cfg SessionConfig, payload *dto.SessionPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(cfg.TTLHours) * time.Hour),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// clearSessionCookie expira la cookie de sesión.
func clearSessionCookie(c *fiber.Ctx, cfg SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionMiddleware exige una sesión de administrador válida y extrae la
// identidad a c.Locals. Cualquier cookie inválida responde 401; la
// autorización fina por sección la decide RequirePermission.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := readSession(c, cfg.CookieName)
		if payload == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "sesión de administrador requerida"})
		}
		c.Locals(LocalAdminID, payload.UID)
		c.Locals(LocalAdminEmail, payload.Email)
		c.Locals(LocalAdminRole, payload.Role)
		return c.Next()
	}
}

// GetAdminID devuelve el AdminID del contexto (después del middleware de sesión).
func GetAdminID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAdminEmail devuelve el email del administrador del contexto.
func GetAdminEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
