package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/auth"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/application/usecase"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
)

// AdminHandler maneja la sesión del panel (login/logout/introspección) y la
// gestión de cuentas de administrador.
type AdminHandler struct {
	authUC  *auth.UseCase
	uc      *usecase.AdminUseCase
	session SessionConfig
}

// NewAdminHandler construye el handler.
func NewAdminHandler(authUC *auth.UseCase, uc *usecase.AdminUseCase, session SessionConfig) *AdminHandler {
	return &AdminHandler{authUC: authUC, uc: uc, session: session}
}

// ── Sesión ────────────────────────────────────────────────────────────────────

// Login godoc
// @Summary      Iniciar sesión en el panel (emite la cookie admin_session)
// @Tags         admin-auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionPayload
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	payload, err := h.authUC.LoginAdmin(in)
	if err != nil {
		if err == domain.ErrUnauthorized || err == domain.ErrAdminNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta pendiente de aprobación o deshabilitada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := writeSessionCookie(c, h.session, payload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo emitir la sesión"})
	}
	return c.JSON(payload)
}

// Logout godoc
// @Summary      Cerrar sesión del panel
// @Tags         admin-auth
// @Produce      json
// @Success      200  {object}  dto.SessionPayload
// @Router       /api/admin/logout [post]
func (h *AdminHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, h.session)
	return c.JSON(dto.SessionPayload{IsLoggedIn: false})
}

// Session godoc
// @Summary      Introspección de la sesión actual
// @Description  Devuelve siempre 200; una cookie ausente o malformada se
// @Description  reporta como {"isLoggedIn": false}.
// @Tags         admin-auth
// @Produce      json
// @Success      200  {object}  dto.SessionPayload
// @Router       /api/admin/session [get]
func (h *AdminHandler) Session(c *fiber.Ctx) error {
	payload := readSession(c, h.session.CookieName)
	if payload == nil {
		return c.JSON(dto.SessionPayload{IsLoggedIn: false})
	}
	return c.JSON(payload)
}

// Profile godoc
// @Summary      Perfil de la cuenta autenticada
// @Tags         admin-auth
// @Security     AdminSession
// @Produce      json
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/profile [get]
func (h *AdminHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetAdminID(c))
	if err != nil {
		return adminError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "administrador no encontrado"})
	}
	return c.JSON(out)
}

// ── Gestión de administradores ────────────────────────────────────────────────

// Create godoc
// @Summary      Crear cuenta de administrador (queda pending)
// @Tags         admins
// @Security     AdminSession
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdminRequest  true  "Datos de la cuenta"
// @Success      201   {object}  dto.AdminResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/admins [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return adminError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar administradores
// @Tags         admins
// @Security     AdminSession
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.AdminListResponse
// @Router       /api/admin/admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener administrador por ID
// @Tags         admins
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del administrador"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/admins/{id} [get]
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return adminError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "administrador no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar nombre, teléfono o permisos
// @Tags         admins
// @Security     AdminSession
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del administrador"
// @Param        body  body  dto.UpdateAdminRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.AdminResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/admins/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return adminError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una cuenta pendiente
// @Tags         admins
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del administrador"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/admins/{id}/approve [post]
func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"))
	if err != nil {
		return adminError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar approved ⇄ disabled
// @Tags         admins
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del administrador"
// @Success      200  {object}  dto.AdminResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/admins/{id}/toggle [post]
func (h *AdminHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(c.Params("id"))
	if err != nil {
		return adminError(c, err)
	}
	return c.JSON(out)
}

// adminError mapea los errores de dominio de administración a HTTP.
func adminError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrAdminNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "administrador no encontrado"})
	case domain.ErrEmailAlreadyExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case domain.ErrSuperAdminImmutable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUPER_ADMIN", Message: "la cuenta super admin no se puede modificar"})
	case domain.ErrInvalidTransition, domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la transición de estado no está permitida"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
