package billing

import (
	"context"
	"time"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/repository"
	"github.com/jhoicas/invoices-dashboard/pkg/logger"
)

// Mensajes fijos de las acciones de factura.
const (
	MsgCreateValidation = "Missing fields. Failed to create Invoice"
	MsgUpdateValidation = "Missing fields. Failed to update Invoice"
	MsgCreateFailed     = "Failed to create invoice."
	MsgUpdateFailed     = "Failed to update invoice."
	MsgDeleteFailed     = "Failed to delete invoice."
)

// InvoiceActions acciones de mutación del dashboard: validar, escribir una sentencia,
// invalidar la vista de facturas y redirigir a ella.
type InvoiceActions struct {
	repo      repository.InvoiceRepository
	views     ViewInvalidator
	validator FormValidator
	now       Clock
	log       *logger.Logger
}

// NewInvoiceActions construye las acciones. now puede ser nil (usa time.Now).
func NewInvoiceActions(repo repository.InvoiceRepository, views ViewInvalidator, v FormValidator, now Clock, log *logger.Logger) *InvoiceActions {
	if now == nil {
		now = time.Now
	}
	return &InvoiceActions{repo: repo, views: views, validator: v, now: now, log: log.Component("invoice_actions")}
}

// CreateInvoice valida los campos e inserta la factura con fecha de hoy.
//
// Retorna:
//   - StateResult con errores por campo si la validación falla (sin persistir).
//   - RedirectResult(InvoicesPath) si la inserción fue exitosa.
//   - *domain.FatalError si la persistencia falla.
func (a *InvoiceActions) CreateInvoice(ctx context.Context, fields map[string]string) (ActionResult, error) {
	form, errs, err := DecodeInvoiceForm(a.validator, fields)
	if err != nil {
		return ActionResult{}, a.fatal(MsgCreateFailed, "Validation Error", err)
	}
	if errs != nil {
		return StateResult(dto.FormState{Message: MsgCreateValidation, Errors: errs}), nil
	}

	ch := changes(form)
	invoice := &entity.Invoice{
		CustomerID: ch.CustomerID,
		Amount:     ch.Amount,
		Status:     ch.Status,
		Date:       entity.IssueDate(a.now()),
	}
	if err := a.repo.Create(ctx, invoice); err != nil {
		return ActionResult{}, a.fatal(MsgCreateFailed, "Database Error", err)
	}
	return a.done("create", invoice.ID), nil
}

// UpdateInvoice valida los campos y actualiza cliente, monto y estado de la factura id.
// La fecha y el ID no se modifican.
func (a *InvoiceActions) UpdateInvoice(ctx context.Context, id string, fields map[string]string) (ActionResult, error) {
	form, errs, err := DecodeInvoiceForm(a.validator, fields)
	if err != nil {
		return ActionResult{}, a.fatal(MsgUpdateFailed, "Validation Error", err)
	}
	if errs != nil {
		return StateResult(dto.FormState{Message: MsgUpdateValidation, Errors: errs}), nil
	}

	if err := a.repo.Update(ctx, id, changes(form)); err != nil {
		return ActionResult{}, a.fatal(MsgUpdateFailed, "Database Error", err)
	}
	return a.done("update", id), nil
}

// DeleteInvoice elimina la factura id. No verifica que exista: un id desconocido
// igual invalida la vista y redirige.
func (a *InvoiceActions) DeleteInvoice(ctx context.Context, id string) (ActionResult, error) {
	if err := a.repo.Delete(ctx, id); err != nil {
		return ActionResult{}, a.fatal(MsgDeleteFailed, "Database Error", err)
	}
	return a.done("delete", id), nil
}

func (a *InvoiceActions) done(op, id string) ActionResult {
	a.views.Invalidate(InvoicesPath)
	a.log.Info().Str("op", op).Str("invoice_id", id).Msg("factura persistida, vista invalidada")
	return RedirectResult(InvoicesPath)
}

// fatal registra la causa bajo logMsg y la escala con el mensaje visible msg.
func (a *InvoiceActions) fatal(msg, logMsg string, cause error) error {
	a.log.Error().Err(cause).Msg(logMsg)
	return domain.NewFatalError(msg, cause)
}
