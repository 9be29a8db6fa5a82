// Package pdf genera el comprobante PDF de una factura del dashboard (una página A4):
// encabezado con número y fecha, datos del cliente, monto y estado, y un QR con el ID.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/jhoicas/invoices-dashboard/internal/application/billing"
	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 22, Green: 163, Blue: 74}
)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	Author string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{Author: author}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.InvoiceListItem, formattedAmount string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+invoice.ID, true).
		WithAuthor(g.Author, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(invoice))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(amountRow(invoice, formattedAmount))
	m.AddRows(row.New(8))
	m.AddRows(qrRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(invoice *entity.InvoiceListItem) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New(invoice.ID, props.Text{
				Size: 7, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Date: "+invoice.Date, props.Text{
				Size: 9, Align: align.Right, Top: 10,
			}),
		),
	)
}

func customerRow(invoice *entity.InvoiceListItem) core.Row {
	return row.New(18).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(invoice.CustomerName, invoice.CustomerID), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 6,
			}),
			text.New(nonEmpty(invoice.CustomerEmail, "-"), props.Text{
				Size: 9, Top: 12, Color: colorGray,
			}),
		),
	)
}

func amountRow(invoice *entity.InvoiceListItem, formattedAmount string) core.Row {
	statusColor := colorGray
	if invoice.Status == entity.InvoiceStatusPaid {
		statusColor = colorPaid
	}
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Status", props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(strings.ToUpper(string(invoice.Status)), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: statusColor, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("Amount", props.Text{Size: 8, Align: align.Right, Color: colorGray, Top: 1}),
			text.New(formattedAmount, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 6,
			}),
		),
	)
}

func qrRow(invoice *entity.InvoiceListItem) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(invoice.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
