package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/application/dto"
)

// CustomerHandler lista los clientes para los formularios de factura (protegido).
type CustomerHandler struct {
	uc *billing.InvoiceQueryUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.InvoiceQueryUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /dashboard/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListCustomers(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Failed to fetch all customers."})
	}
	return c.JSON(list)
}
