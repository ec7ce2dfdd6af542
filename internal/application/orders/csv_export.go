package orders

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// csvHeader columnas del export, en este orden exacto.
var csvHeader = []string{"Order ID", "Customer", "Date", "Amount", "Status"}

// ExportCSV serializa el listado de órdenes como CSV.
// encoding/csv escapa con comillas dobles los campos que las contienen
// (nombres de cliente como `O'Brien "Meds"`). La fecha es la de checkout si
// existe; si no, la de creación.
func ExportCSV(list []*entity.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, o := range list {
		date := o.CreatedAt
		if o.CheckoutAt != nil {
			date = *o.CheckoutAt
		}
		record := []string{
			o.ID,
			o.BuyerName,
			date.Format(time.DateOnly),
			o.Total.StringFixed(2),
			o.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export lista las órdenes (sin drafts) y las serializa para descarga.
func (uc *UseCase) Export(status string, limit, offset int) ([]byte, error) {
	list, err := uc.orderRepo.List(status, true, limit, offset)
	if err != nil {
		return nil, err
	}
	return ExportCSV(list)
}
