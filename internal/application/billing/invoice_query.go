package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

// ItemsPerPage tamaño de página de la vista de facturas.
const ItemsPerPage = 6

// InvoiceQueryUseCase lecturas que alimentan las vistas del dashboard.
type InvoiceQueryUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// ListInvoices devuelve la página solicitada (base 1) filtrada por query.
func (uc *InvoiceQueryUseCase) ListInvoices(ctx context.Context, query string, page int) (*dto.InvoicePageResponse, error) {
	if page < 1 {
		page = 1
	}
	total, err := uc.invoiceRepo.Count(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("contar facturas: %w", err)
	}
	list, err := uc.invoiceRepo.List(ctx, repository.InvoiceFilter{
		Query:  query,
		Limit:  ItemsPerPage,
		Offset: (page - 1) * ItemsPerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	out := &dto.InvoicePageResponse{
		Items: make([]dto.InvoiceResponse, 0, len(list)),
		PageResponse: dto.PageResponse{
			Page:       page,
			Total:      total,
			TotalPages: (total + ItemsPerPage - 1) / ItemsPerPage,
		},
	}
	for _, inv := range list {
		out.Items = append(out.Items, toInvoiceResponse(inv))
	}
	return out, nil
}

// ListCustomers devuelve los clientes ordenados por nombre.
func (uc *InvoiceQueryUseCase) ListCustomers(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, ImageURL: c.ImageURL})
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.InvoiceListItem) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:              inv.ID,
		CustomerID:      inv.CustomerID,
		Name:            inv.CustomerName,
		Email:           inv.CustomerEmail,
		ImageURL:        inv.ImageURL,
		Amount:          inv.Amount,
		FormattedAmount: FormatCurrency(inv.Amount),
		Status:          string(inv.Status),
		Date:            inv.Date,
	}
}
