package utils

import (
	"bytes"
	"testing"

	"fixv/models"
)

func TestRenderInvoicePDF(t *testing.T) {
	details := &models.InvoiceDetails{
		InvoiceID:       "inv-1",
		TotalAmount:     65.0,
		UserName:        "Dana",
		PaymentStatus:   "pending",
		AppointmentDate: "2026-09-14",
		CreatedAt:       "Mon Sep 14",
		ShopName:        "Speedy Motors",
		Services:        []string{"Oil Change", "Tire Rotation"},
		VehicleDetails:  "Corolla Toyota KDA 123X",
		ServicePrices: map[string]float64{
			"Oil Change":    25.0,
			"Tire Rotation": 40.0,
		},
	}

	pdfBytes, err := RenderInvoicePDF(details)
	if err != nil {
		t.Fatalf("RenderInvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF")
	}
}
