package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

func TestGenerateInvoicePDF_ProduceDocumento(t *testing.T) {
	inv := &entity.InvoiceListItem{
		Invoice: entity.Invoice{
			ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", CustomerID: "c1",
			Amount: 4550, Status: entity.InvoiceStatusPaid, Date: "2026-10-14",
		},
		CustomerName:  "Evil Rabbit",
		CustomerEmail: "evil@rabbit.com",
	}

	out, err := NewMarotoPDFGenerator("invoices-dashboard").GenerateInvoicePDF(context.Background(), inv, "$45.50")

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el resultado debe ser un PDF")
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "x", nonEmpty("x", "y"))
	assert.Equal(t, "y", nonEmpty("", "y"))
}
