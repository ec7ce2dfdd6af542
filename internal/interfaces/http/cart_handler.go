package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Farmaventa-api/internal/application/cart"
	"github.com/jhoicas/Farmaventa-api/internal/application/dto"
	"github.com/jhoicas/Farmaventa-api/internal/domain"
)

// CartHandler maneja el carrito del comprador autenticado. Toda mutación
// corre en una transacción que reserva stock y sincroniza la orden draft.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Ver carrito con totales
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetBuyerID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar una unidad al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "medicine_id"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.MedicineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medicine_id es requerido"})
	}
	out, err := h.uc.Add(c.Context(), GetBuyerID(c), in.MedicineID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar la cantidad de una línea (<= 0 la elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        medicineID  path  string  true  "ID del medicamento"
// @Param        body        body  dto.SetCartQuantityRequest  true  "quantity"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{medicineID} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	medicineID := c.Params("medicineID")
	if medicineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "medicineID es requerido"})
	}
	var in dto.SetCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetQuantity(c.Context(), GetBuyerID(c), medicineID, in.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        medicineID  path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart/items/{medicineID} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	medicineID := c.Params("medicineID")
	if medicineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "medicineID es requerido"})
	}
	out, err := h.uc.Remove(c.Context(), GetBuyerID(c), medicineID)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar el carrito (restaura el stock reservado)
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.Context(), GetBuyerID(c)); err != nil {
		return cartError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Confirmar el carrito (draft → pending)
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(c.Context(), GetBuyerID(c))
	if err != nil {
		if err == domain.ErrEmptyCart {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return cartError(c, err)
	}
	return c.JSON(out)
}

// cartError mapea los errores de dominio del carrito a HTTP.
func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "medicamento no encontrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad solicitada"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
