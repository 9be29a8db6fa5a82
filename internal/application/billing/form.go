package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/application/validation"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

// Mensajes por campo del formulario de factura.
var invoiceFormMessages = validation.Messages{
	"customerId": "Please select a customer.",
	"amount":     "Amount must be greater than 0.",
	"amount.lte": "Amount must not exceed $21,474,836.47.",
	"status":     "Please select a status.",
}

// DecodeInvoiceForm convierte los campos crudos del formulario en un InvoiceForm validado.
// Un amount no numérico se decodifica como cero y falla la regla gt=0.
func DecodeInvoiceForm(v FormValidator, fields map[string]string) (dto.InvoiceForm, validation.FieldErrors, error) {
	form := dto.InvoiceForm{
		CustomerID: fields["customerId"],
		Status:     fields["status"],
	}
	if raw := strings.TrimSpace(fields["amount"]); raw != "" {
		if amount, err := decimal.NewFromString(raw); err == nil {
			form.Amount = amount
		}
	}
	errs, err := v.Struct(form, invoiceFormMessages)
	if err != nil {
		return dto.InvoiceForm{}, nil, err
	}
	if errs == nil && form.Amount.Shift(2).Round(0).GreaterThan(decimal.NewFromInt(MaxAmountCents)) {
		errs = validation.FieldErrors{}
		errs.Add("amount", invoiceFormMessages["amount.lte"])
	}
	if errs != nil {
		return dto.InvoiceForm{}, errs, nil
	}
	return form, nil, nil
}

// MaxAmountCents mayor monto almacenable (columna INT).
const MaxAmountCents = 2147483647

// ToCents convierte el monto a centavos enteros: round(amount × 100).
// Solo recibe montos ya validados contra MaxAmountCents.
func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// changes traduce el formulario validado a los campos persistibles.
func changes(form dto.InvoiceForm) entity.InvoiceChanges {
	return entity.InvoiceChanges{
		CustomerID: form.CustomerID,
		Amount:     ToCents(form.Amount),
		Status:     entity.InvoiceStatus(form.Status),
	}
}
