package billing_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
)

type mockInvoiceRepo struct {
	mock.Mock
}

var _ repository.InvoiceRepository = (*mockInvoiceRepo)(nil)

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	args := m.Called(ctx, invoice)
	if args.Error(0) == nil && invoice.ID == "" {
		invoice.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *mockInvoiceRepo) Update(ctx context.Context, id string, changes entity.InvoiceChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.InvoiceListItem, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*entity.InvoiceListItem)
	return inv, args.Error(1)
}

func (m *mockInvoiceRepo) List(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.InvoiceListItem, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*entity.InvoiceListItem)
	return list, args.Error(1)
}

func (m *mockInvoiceRepo) Count(ctx context.Context, query string) (int, error) {
	args := m.Called(ctx, query)
	return args.Int(0), args.Error(1)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Customer)
	return list, args.Error(1)
}

// fakeViews registra las vistas invalidadas.
type fakeViews struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeViews) Invalidate(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)
}

func (f *fakeViews) invalidated() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}

type fakePDF struct {
	gotAmount string
	err       error
}

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, _ *entity.InvoiceListItem, formattedAmount string) ([]byte, error) {
	f.gotAmount = formattedAmount
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3"), nil
}
