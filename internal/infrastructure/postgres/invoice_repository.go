package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceListColumns = `
	i.id, i.customer_id, i.amount, i.status, i.date::text,
	c.name, c.email, c.image_url`

const invoiceSearchWhere = `
	WHERE c.name ILIKE $1 OR c.email ILIKE $1 OR i.amount::text ILIKE $1
	   OR i.date::text ILIKE $1 OR i.status ILIKE $1`

// Create persiste la factura. Genera el ID si viene vacío; un conflicto de ID no hace nada.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Amount, string(invoice.Status), invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update actualiza cliente, monto y estado. La fecha no se toca.
func (r *InvoiceRepo) Update(ctx context.Context, id string, changes entity.InvoiceChanges) error {
	query := `
		UPDATE invoices
		SET customer_id = $2, amount = $3, status = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, changes.CustomerID, changes.Amount, string(changes.Status))
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura con los datos de su cliente.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.InvoiceListItem, error) {
	query := `SELECT` + invoiceListColumns + `
		FROM invoices i JOIN customers c ON i.customer_id = c.id
		WHERE i.id = $1`
	inv, err := scanInvoiceItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista facturas filtradas por texto, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceListItem, error) {
	query := `SELECT` + invoiceListColumns + `
		FROM invoices i JOIN customers c ON i.customer_id = c.id` + invoiceSearchWhere + `
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, likePattern(filter.Query), filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceListItem
	for rows.Next() {
		inv, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Count cuenta las facturas que coinciden con el filtro de texto.
func (r *InvoiceRepo) Count(ctx context.Context, query string) (int, error) {
	sql := `SELECT COUNT(*) FROM invoices i JOIN customers c ON i.customer_id = c.id` + invoiceSearchWhere
	var n int
	if err := r.q.QueryRow(ctx, sql, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

func scanInvoiceItem(row pgx.Row) (*entity.InvoiceListItem, error) {
	var inv entity.InvoiceListItem
	var status string
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date,
		&inv.CustomerName, &inv.CustomerEmail, &inv.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	inv.Status = entity.InvoiceStatus(status)
	if !inv.Status.Valid() {
		return nil, fmt.Errorf("estado de factura desconocido %q", status)
	}
	return &inv, nil
}
