package billing

import (
	"context"
	"time"

	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// FormValidator valida un payload y devuelve errores por campo (implementado por *validation.Validator).
type FormValidator interface {
	Struct(s any, msgs validation.Messages) (validation.FieldErrors, error)
}

// InvoicesPath vista lógica del listado de facturas: se invalida y se redirige a ella.
const InvoicesPath = "/dashboard/invoices"

// ViewInvalidator marca como obsoleta una vista ya calculada; la capa de render la recalcula
// en el siguiente acceso.
type ViewInvalidator interface {
	Invalidate(path string)
}

// Clock fuente de tiempo inyectable (tests).
type Clock func() time.Time

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.InvoiceListItem, formattedAmount string) ([]byte, error)
}
