package dto

import "github.com/shopspring/decimal"

// InvoiceForm payload decodificado y validado de los formularios de crear/editar factura.
// El tope de Amount es el mayor monto cuyo valor en centavos cabe en la columna INT.
type InvoiceForm struct {
	CustomerID string          `form:"customerId" validate:"required"`
	Amount     decimal.Decimal `form:"amount" validate:"gt=0,lte=21474836.47"`
	Status     string          `form:"status" validate:"required,oneof=pending paid"`
}

// FormState resultado estructurado de una acción que no redirige:
// errores por campo más un mensaje resumen.
type FormState struct {
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// InvoiceResponse fila de la vista /dashboard/invoices.
type InvoiceResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ImageURL        string `json:"image_url,omitempty"`
	Amount          int64  `json:"amount"` // centavos
	FormattedAmount string `json:"formatted_amount"`
	Status          string `json:"status"`
	Date            string `json:"date"`
}

// InvoicePageResponse página de la vista de facturas.
type InvoicePageResponse struct {
	Items []InvoiceResponse `json:"items"`
	PageResponse
}

// CustomerResponse cliente para el selector de los formularios.
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url,omitempty"`
}
