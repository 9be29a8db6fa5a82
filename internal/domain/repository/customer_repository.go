package repository

import (
	"context"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
}
