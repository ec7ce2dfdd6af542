package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/pkg/jwt"
)

// Locals keys para la identidad del comprador en Fiber.
const (
	LocalBuyerID    = "buyer_id"
	LocalBuyerEmail = "buyer_email"
)

// AuthMiddleware valida el Bearer Token JWT del storefront y extrae
// el BuyerID y el email a c.Locals. Solo acepta tokens con role "buyer".
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if role != "buyer" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no corresponde a un comprador"})
		}
		c.Locals(LocalBuyerID, userID)
		c.Locals(LocalBuyerEmail, email)
		return c.Next()
	}
}

// GetBuyerID devuelve el BuyerID del contexto (después del middleware de auth).
func GetBuyerID(c *fiber.Ctx) string {
	v := c.Locals(LocalBuyerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
