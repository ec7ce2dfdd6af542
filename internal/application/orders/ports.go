package orders

import (
	"context"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto para la representación gráfica de la orden.
// La implementación (Maroto) vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, buyer *entity.Buyer, settings *entity.Settings) ([]byte, error)
}
