package entity

import "time"

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

// Estados válidos; no existe un tercer valor.
const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout formato de la fecha de emisión (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Valid indica si el estado es uno de los permitidos.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice representa una factura del dashboard.
// Amount se guarda en centavos; ID y Date no cambian después de crearse.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     InvoiceStatus
	Date       string // YYYY-MM-DD
}

// IssueDate devuelve la fecha de emisión para el momento dado (día UTC).
func IssueDate(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// InvoiceChanges campos editables de una factura existente.
type InvoiceChanges struct {
	CustomerID string
	Amount     int64 // centavos
	Status     InvoiceStatus
}

// InvoiceListItem fila de la vista de facturas (factura + datos del cliente).
type InvoiceListItem struct {
	Invoice
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}
