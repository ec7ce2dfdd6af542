package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/application/usecase"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
)

// BuyerHandler maneja el perfil del comprador autenticado y la gestión de
// compradores en el panel (cola de aprobación, habilitar/deshabilitar).
type BuyerHandler struct {
	uc *usecase.BuyerUseCase
}

// NewBuyerHandler construye el handler.
func NewBuyerHandler(uc *usecase.BuyerUseCase) *BuyerHandler {
	return &BuyerHandler{uc: uc}
}

// ── Storefront (comprador autenticado) ────────────────────────────────────────

// GetProfile godoc
// @Summary      Ver mi perfil
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BuyerResponse
// @Router       /api/profile [get]
func (h *BuyerHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetBuyerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comprador no encontrado"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar mi perfil
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBuyerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BuyerResponse
// @Router       /api/profile [put]
func (h *BuyerHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateBuyerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetBuyerID(c), in)
	if err != nil {
		return buyerError(c, err)
	}
	return c.JSON(out)
}

// AddAddress godoc
// @Summary      Agregar dirección de envío
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddressDTO  true  "Dirección"
// @Success      201   {object}  dto.BuyerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile/addresses [post]
func (h *BuyerHandler) AddAddress(c *fiber.Ctx) error {
	var in dto.AddressDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Line1 == "" || in.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "line1 y city son requeridos"})
	}
	out, err := h.uc.AddAddress(GetBuyerID(c), in)
	if err != nil {
		return buyerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetDefaultAddress godoc
// @Summary      Marcar una dirección como predeterminada
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Param        addressID  path  string  true  "ID de la dirección"
// @Success      200  {object}  dto.BuyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile/addresses/{addressID}/default [put]
func (h *BuyerHandler) SetDefaultAddress(c *fiber.Ctx) error {
	out, err := h.uc.SetDefaultAddress(GetBuyerID(c), c.Params("addressID"))
	if err != nil {
		return buyerError(c, err)
	}
	return c.JSON(out)
}

// ── Panel de administración ───────────────────────────────────────────────────

// List godoc
// @Summary      Listar compradores (status=pending es la cola de solicitudes)
// @Tags         buyers
// @Security     AdminSession
// @Produce      json
// @Param        status  query  string  false  "pending | approved | disabled"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.BuyerListResponse
// @Router       /api/admin/buyers [get]
func (h *BuyerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByStatus(c.Query("status"), limit, offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comprador por ID
// @Tags         buyers
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del comprador"
// @Success      200  {object}  dto.BuyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/buyers/{id} [get]
func (h *BuyerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comprador no encontrado"})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar un comprador pendiente
// @Tags         buyers
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del comprador"
// @Success      200  {object}  dto.BuyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/buyers/{id}/approve [post]
func (h *BuyerHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Params("id"))
	if err != nil {
		return buyerError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Alternar approved ⇄ disabled
// @Tags         buyers
// @Security     AdminSession
// @Produce      json
// @Param        id   path  string  true  "ID del comprador"
// @Success      200  {object}  dto.BuyerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/buyers/{id}/toggle [post]
func (h *BuyerHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.uc.Toggle(c.Params("id"))
	if err != nil {
		return buyerError(c, err)
	}
	return c.JSON(out)
}

// buyerError mapea los errores de dominio de compradores a HTTP.
func buyerError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrBuyerNotFound, domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comprador no encontrado"})
	case domain.ErrInvalidTransition, domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la transición de estado no está permitida"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
