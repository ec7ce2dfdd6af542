// Package pdf implementa la generación del comprobante de pedido en PDF
// que el panel de administración ofrece para descarga.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre farmacia + contacto  │  N° Pedido + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMPRADOR: Razón social + licencia + dirección de envío    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Medicamento | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / Envío / TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado del pedido + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoOrderGenerator implementa orders.InvoicePDFGenerator usando Maroto v2.
type MarotoOrderGenerator struct{}

// NewMarotoOrderGenerator construye el generador.
func NewMarotoOrderGenerator() *MarotoOrderGenerator { return &MarotoOrderGenerator{} }

// GenerateOrderPDF genera el comprobante del pedido y devuelve sus bytes.
func (g *MarotoOrderGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	buyer *entity.Buyer,
	settings *entity.Settings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		WithAuthor(settings.StoreName, true).
		Build()

	m := maroto.New(cfg)

	prefix := currencyPrefix(settings.CurrencyCode)

	// Header principal
	m.AddRows(headerRow(order, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas del pedido
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items, prefix) {
		m.AddRows(r)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order, prefix))

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la farmacia + contacto (izq) y N° Pedido + Fecha (der).
func headerRow(order *entity.Order, settings *entity.Settings) core.Row {
	date := order.CreatedAt
	if order.CheckoutAt != nil {
		date = *order.CheckoutAt
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(settings.StoreName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s",
				nonEmpty(settings.ContactEmail, "—"),
				nonEmpty(settings.ContactPhone, "—"),
			), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.ID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: datos del comprador y su dirección de envío por defecto.
func buyerRow(buyer *entity.Buyer) core.Row {
	addr := "—"
	if a := buyer.DefaultAddress(); a != nil {
		addr = fmt.Sprintf("%s, %s, %s %s", a.Line1, a.City, a.State, a.PostalCode)
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("COMPRADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(buyer.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Licencia: %s   |   Email: %s   |   Envío: %s",
				nonEmpty(buyer.DrugLicense, "—"),
				nonEmpty(buyer.Email, "—"),
				addr,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Medicamento", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: una fila por línea del pedido.
func tableItemRows(items []entity.OrderItem, prefix string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		lineTotal := it.Price.Mul(decimalFromInt(it.Quantity))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				prefix+it.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				prefix+lineTotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(order *entity.Order, prefix string) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(28).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:", 1),
			label("Impuesto (5%):", 7),
			label("Envío:", 13),
			grandLabel("TOTAL:", 20),
		),
		col.New(3).Add(
			value(prefix+order.Subtotal.StringFixed(2), 1),
			value(prefix+order.Tax.StringFixed(2), 7),
			value(prefix+"0.00", 13),
			grandValue(prefix+order.Total.StringFixed(2), 20),
		),
		col.New(2),
	)
}

// footerRows: estado del pedido + leyenda.
func footerRows(order *entity.Order) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Estado del pedido: "+order.Status, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Este comprobante corresponde a un pedido mayorista de productos "+
					"farmacéuticos. Conserve este documento como soporte de la operación.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// currencyPrefix mapea el código ISO de moneda a su prefijo imprimible en
// fuentes core de PDF (el símbolo ₹ no existe en helvetica).
func currencyPrefix(code string) string {
	switch code {
	case "INR":
		return "Rs. "
	case "USD":
		return "$"
	case "EUR":
		return "EUR "
	default:
		return code + " "
	}
}
