package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
	"github.com/jhoicas/invoices-dashboard/internal/domain"
)

// InvoiceHandler maneja las acciones y vistas de facturas del dashboard (protegido).
type InvoiceHandler struct {
	actions *billing.InvoiceActions
	query   *billing.InvoiceQueryUseCase
	pdf     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(actions *billing.InvoiceActions, query *billing.InvoiceQueryUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{actions: actions, query: query, pdf: pdf}
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       x-www-form-urlencoded
// @Param        customerId  formData  string  true  "ID del cliente"
// @Param        amount      formData  string  true  "Monto en dólares"
// @Param        status      formData  string  true  "pending | paid"
// @Success      303
// @Failure      422  {object}  dto.FormState
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /dashboard/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	res, err := h.actions.CreateInvoice(c.UserContext(), fields)
	return respondAction(c, res, err)
}

// Update POST|PUT /dashboard/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulario inválido"})
	}
	res, err := h.actions.UpdateInvoice(c.UserContext(), c.Params("id"), fields)
	return respondAction(c, res, err)
}

// Delete POST /dashboard/invoices/:id/delete | DELETE /dashboard/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	res, err := h.actions.DeleteInvoice(c.UserContext(), c.Params("id"))
	return respondAction(c, res, err)
}

// List GET /dashboard/invoices?query=&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	out, err := h.query.ListInvoices(c.UserContext(), c.Query("query"), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch invoices."})
	}
	return c.JSON(out)
}

// PDF GET /dashboard/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	body, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}

// respondAction traduce el resultado de una acción: redirección 303, estado 422 o falla 500.
func respondAction(c *fiber.Ctx, res billing.ActionResult, err error) error {
	if err != nil {
		var fatal *domain.FatalError
		if errors.As(err, &fatal) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: fatal.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if res.IsRedirect() {
		return c.Redirect(res.Location, fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(res.State)
}
