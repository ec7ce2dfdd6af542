package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// resolver permisos. Lo implementa *access.Resolver; el uso de interfaz
// evita el import circular.
type permissionChecker interface {
	Has(adminID, email, permission string) bool
}

// RequirePermission devuelve un middleware Fiber que verifica si el
// administrador de la sesión tiene acceso a la sección. Debe usarse DESPUÉS
// de SessionMiddleware (necesita LocalAdminID y LocalAdminEmail).
//
// Comportamiento:
//   - 403 Forbidden → el permiso no está concedido, la cuenta no está
//     aprobada o el registro ya no existe. El resolver es fail-closed:
//     cualquier duda resuelve a denegar.
//   - Si no hay admin_id en el contexto, responde 401.
func RequirePermission(permission string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID := GetAdminID(c)
		email := GetAdminEmail(c)
		if adminID == "" && email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NO_SESSION",
				Message: "sesión de administrador requerida",
			})
		}

		if !checker.Has(adminID, email, permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_DENIED",
				Message: "la sección '" + permission + "' no está habilitada para esta cuenta",
			})
		}

		return c.Next()
	}
}
