package utils

import (
	"bytes"
	"fmt"

	"fixv/models"

	"github.com/phpdave11/gofpdf"
)

// RenderInvoicePDF renders the invoice read model as a printable A4 PDF.
func RenderInvoicePDF(details *models.InvoiceDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "FIXV Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice: %s", details.InvoiceID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", details.CreatedAt))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Billed to: %s", details.UserName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Shop: %s", details.ShopName))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Vehicle: %s", details.VehicleDetails))
	pdf.Ln(8)
	if details.AppointmentDate != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Appointment: %s", details.AppointmentDate))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	// Services table.
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Service", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, name := range details.Services {
		price := ""
		if p, ok := details.ServicePrices[name]; ok {
			price = fmt.Sprintf("%.2f", p)
		}
		pdf.CellFormat(130, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, price, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Total due", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", details.TotalAmount), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Payment status: %s", details.PaymentStatus))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
