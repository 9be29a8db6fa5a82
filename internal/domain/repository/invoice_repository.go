package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// InvoiceFilter filtro y paginación de la vista de facturas.
type InvoiceFilter struct {
	Query  string
	Limit  int
	Offset int
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Update y Delete no verifican filas afectadas.
type InvoiceRepository interface {
	// Create inserta la factura; un conflicto de ID no hace nada.
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, id string, changes entity.InvoiceChanges) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.InvoiceListItem, error)
	List(ctx context.Context, filter InvoiceFilter) ([]*entity.InvoiceListItem, error)
	Count(ctx context.Context, query string) (int, error)
}
