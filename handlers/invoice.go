package handlers

import (
	"fmt"
	"net/http"

	"fixv/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetInvoiceHandler returns the flattened invoice read model.
func GetInvoiceHandler(c *gin.Context) {
	logger := getLogger(c)

	details, err := BookingSvc.GetInvoiceDetails(c.Param("id"))
	if err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetInvoicePDFHandler renders the invoice as a downloadable PDF.
func GetInvoicePDFHandler(c *gin.Context) {
	logger := getLogger(c)

	details, err := BookingSvc.GetInvoiceDetails(c.Param("id"))
	if err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch invoice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoice"})
		return
	}

	pdfBytes, err := utils.RenderInvoicePDF(details)
	if err != nil {
		logger.Error("Failed to render invoice PDF", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", details.InvoiceID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
