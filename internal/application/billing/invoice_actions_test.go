package billing_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// 23:30 en UTC-5 ya es el día siguiente en UTC.
var fixedNow = time.Date(2026, 10, 13, 23, 30, 0, 0, time.FixedZone("COT", -5*3600))

type actionsFixture struct {
	repo    *mockInvoiceRepo
	views   *fakeViews
	logs    *bytes.Buffer
	actions *billing.InvoiceActions
}

func newActions(t *testing.T) *actionsFixture {
	t.Helper()
	f := &actionsFixture{repo: &mockInvoiceRepo{}, views: &fakeViews{}, logs: &bytes.Buffer{}}
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: f.logs})
	f.actions = billing.NewInvoiceActions(f.repo, f.views, validation.New(), func() time.Time { return fixedNow }, log)
	return f
}

// ── create ────────────────────────────────────────────────────────────────────

func TestCreateInvoice_EscenarioCompleto(t *testing.T) {
	f := newActions(t)
	f.repo.On("Create", mock.Anything, &entity.Invoice{
		CustomerID: "abc",
		Amount:     4550,
		Status:     entity.InvoiceStatusPending,
		Date:       "2026-10-14",
	}).Return(nil).Once()

	res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
		"customerId": "abc", "amount": "45.50", "status": "pending",
	})

	require.NoError(t, err)
	assert.True(t, res.IsRedirect())
	assert.Equal(t, "/dashboard/invoices", res.Location)
	assert.Equal(t, []string{"/dashboard/invoices"}, f.views.invalidated())
	f.repo.AssertExpectations(t)
}

func TestCreateInvoice_RedondeaACentavos(t *testing.T) {
	cases := map[string]int64{
		"45.5":   4550,
		"19.999": 2000,
		"0.015":  2,
		"10.004": 1000,
		"1e2":    10000,
		" 7 ":    700,
	}
	for raw, cents := range cases {
		t.Run(raw, func(t *testing.T) {
			f := newActions(t)
			f.repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *entity.Invoice) bool {
				return inv.Amount == cents
			})).Return(nil).Once()

			res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
				"customerId": "abc", "amount": raw, "status": "paid",
			})
			require.NoError(t, err)
			assert.True(t, res.IsRedirect())
			f.repo.AssertExpectations(t)
		})
	}
}

func TestCreateInvoice_MontoNoPositivo_NoPersiste(t *testing.T) {
	for _, raw := range []string{"0", "-5", "", "abc", "0.00"} {
		t.Run(raw, func(t *testing.T) {
			f := newActions(t)

			res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
				"customerId": "abc", "amount": raw, "status": "pending",
			})

			require.NoError(t, err)
			assert.False(t, res.IsRedirect())
			assert.Equal(t, billing.MsgCreateValidation, res.State.Message)
			assert.Equal(t, []string{"Amount must be greater than 0."}, res.State.Errors["amount"])
			assert.NotContains(t, res.State.Errors, "status")
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, f.views.invalidated())
		})
	}
}

// Montos cuyo valor en centavos no cabe en la columna INT: error de campo, nunca se persisten.
func TestCreateInvoice_MontoFueraDeRango_NoPersiste(t *testing.T) {
	for _, raw := range []string{"184467440737095521.16", "92233720368547758.09", "1e30", "21474836.48", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			f := newActions(t)

			res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
				"customerId": "abc", "amount": raw, "status": "pending",
			})

			require.NoError(t, err)
			assert.False(t, res.IsRedirect())
			assert.Equal(t, billing.MsgCreateValidation, res.State.Message)
			assert.Equal(t, []string{"Amount must not exceed $21,474,836.47."}, res.State.Errors["amount"])
			f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, f.views.invalidated())
		})
	}
}

func TestCreateInvoice_MontoMaximoSePersiste(t *testing.T) {
	f := newActions(t)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(inv *entity.Invoice) bool {
		return inv.Amount == billing.MaxAmountCents
	})).Return(nil).Once()

	res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
		"customerId": "abc", "amount": "21474836.47", "status": "paid",
	})

	require.NoError(t, err)
	assert.True(t, res.IsRedirect())
	f.repo.AssertExpectations(t)
}

func TestUpdateInvoice_MontoFueraDeRango_NoPersiste(t *testing.T) {
	f := newActions(t)

	res, err := f.actions.UpdateInvoice(context.Background(), "inv-1", map[string]string{
		"customerId": "abc", "amount": "184467440737095521.16", "status": "paid",
	})

	require.NoError(t, err)
	assert.Equal(t, billing.MsgUpdateValidation, res.State.Message)
	assert.Contains(t, res.State.Errors, "amount")
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

// brokenValidator simula una falla interna del validador (no de la base).
type brokenValidator struct{}

func (brokenValidator) Struct(any, validation.Messages) (validation.FieldErrors, error) {
	return nil, errors.New("validate: tipo no soportado")
}

// permissiveValidator acepta cualquier payload; deja solo el tope exacto en centavos.
type permissiveValidator struct{}

func (permissiveValidator) Struct(any, validation.Messages) (validation.FieldErrors, error) {
	return nil, nil
}

func TestDecodeInvoiceForm_TopeExactoEnCentavos(t *testing.T) {
	_, errs, err := billing.DecodeInvoiceForm(permissiveValidator{}, map[string]string{
		"customerId": "abc", "amount": "21474836.475", "status": "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Amount must not exceed $21,474,836.47."}, errs["amount"])

	form, errs, err := billing.DecodeInvoiceForm(permissiveValidator{}, map[string]string{
		"customerId": "abc", "amount": "21474836.474", "status": "paid",
	})
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, int64(billing.MaxAmountCents), billing.ToCents(form.Amount))
}

func TestCreateInvoice_FallaDelValidador_NoSeRegistraComoFallaDeBase(t *testing.T) {
	f := newActions(t)
	log := logger.New(logger.Config{Env: "production", Level: "debug", Output: f.logs})
	actions := billing.NewInvoiceActions(f.repo, f.views, brokenValidator{}, func() time.Time { return fixedNow }, log)

	_, err := actions.CreateInvoice(context.Background(), map[string]string{
		"customerId": "abc", "amount": "10", "status": "paid",
	})

	require.Error(t, err)
	assert.True(t, domain.IsFatal(err))
	assert.EqualError(t, err, billing.MsgCreateFailed)
	assert.Contains(t, f.logs.String(), "Validation Error")
	assert.Contains(t, f.logs.String(), "tipo no soportado")
	assert.NotContains(t, f.logs.String(), "Database Error")
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateInvoice_EstadoFueraDelEnum(t *testing.T) {
	for _, status := range []string{"overdue", "", "PAID"} {
		f := newActions(t)

		res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
			"customerId": "abc", "amount": "10", "status": status,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Please select a status."}, res.State.Errors["status"], status)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestCreateInvoice_FormularioVacio_TodosLosCampos(t *testing.T) {
	f := newActions(t)

	res, err := f.actions.CreateInvoice(context.Background(), map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, billing.ActionKindState, res.Kind)
	assert.Equal(t, map[string][]string{
		"customerId": {"Please select a customer."},
		"amount":     {"Amount must be greater than 0."},
		"status":     {"Please select a status."},
	}, map[string][]string(res.State.Errors))
	assert.NotContains(t, f.logs.String(), "Database Error", "la validación no se registra como falla del sistema")
}

func TestCreateInvoice_FallaDePersistencia_EsFatal(t *testing.T) {
	f := newActions(t)
	cause := errors.New("connection refused")
	f.repo.On("Create", mock.Anything, mock.Anything).Return(cause).Once()

	res, err := f.actions.CreateInvoice(context.Background(), map[string]string{
		"customerId": "abc", "amount": "45.50", "status": "pending",
	})

	require.Error(t, err)
	var fatal *domain.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.Equal(t, "Failed to create invoice.", fatal.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, billing.ActionResult{}, res, "sin resultado estructurado")
	assert.Empty(t, f.views.invalidated(), "no se invalida ni redirige")
	assert.Contains(t, f.logs.String(), "connection refused", "la causa queda en el log")
}

// ── update ────────────────────────────────────────────────────────────────────

func TestUpdateInvoice_SoloClienteMontoEstado(t *testing.T) {
	f := newActions(t)
	f.repo.On("Update", mock.Anything, "inv-1", entity.InvoiceChanges{
		CustomerID: "cust-2",
		Amount:     66600,
		Status:     entity.InvoiceStatusPaid,
	}).Return(nil).Once()

	res, err := f.actions.UpdateInvoice(context.Background(), "inv-1", map[string]string{
		"customerId": "cust-2", "amount": "666", "status": "paid",
		"date": "1999-01-01", "id": "otro",
	})

	require.NoError(t, err)
	assert.True(t, res.IsRedirect())
	assert.Equal(t, billing.InvoicesPath, res.Location)
	assert.Equal(t, []string{billing.InvoicesPath}, f.views.invalidated())
	f.repo.AssertExpectations(t)
}

func TestUpdateInvoice_ValidacionFallida(t *testing.T) {
	f := newActions(t)

	res, err := f.actions.UpdateInvoice(context.Background(), "inv-1", map[string]string{
		"customerId": "cust-2", "amount": "-1", "status": "paid",
	})

	require.NoError(t, err)
	assert.Equal(t, "Missing fields. Failed to update Invoice", res.State.Message)
	assert.Contains(t, res.State.Errors, "amount")
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateInvoice_FallaDePersistencia(t *testing.T) {
	f := newActions(t)
	f.repo.On("Update", mock.Anything, "inv-1", mock.Anything).Return(errors.New("timeout")).Once()

	_, err := f.actions.UpdateInvoice(context.Background(), "inv-1", map[string]string{
		"customerId": "cust-2", "amount": "1", "status": "paid",
	})

	require.True(t, domain.IsFatal(err))
	assert.EqualError(t, err, "Failed to update invoice.")
	assert.Empty(t, f.views.invalidated())
}

// ── delete ────────────────────────────────────────────────────────────────────

// Borrar un id inexistente también invalida y redirige: no hay chequeo de existencia.
func TestDeleteInvoice_IDInexistente_IgualRedirige(t *testing.T) {
	f := newActions(t)
	f.repo.On("Delete", mock.Anything, "no-existe").Return(nil).Once()

	res, err := f.actions.DeleteInvoice(context.Background(), "no-existe")

	require.NoError(t, err)
	assert.True(t, res.IsRedirect())
	assert.Equal(t, []string{billing.InvoicesPath}, f.views.invalidated())
	f.repo.AssertExpectations(t)
}

func TestDeleteInvoice_FallaDePersistencia(t *testing.T) {
	f := newActions(t)
	f.repo.On("Delete", mock.Anything, "inv-1").Return(errors.New("boom")).Once()

	_, err := f.actions.DeleteInvoice(context.Background(), "inv-1")

	assert.EqualError(t, err, "Failed to delete invoice.")
	assert.True(t, domain.IsFatal(err))
	assert.Empty(t, f.views.invalidated())
}
