// internal/interfaces/http/handlers/receipt.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/petalline/storefront/internal/domain/order"
	"github.com/petalline/storefront/internal/pkg/pdf"
	"github.com/sirupsen/logrus"
)

// ReceiptHandler renders receipts for confirmations the client already holds.
// Orders are never stored, so the confirmation travels in the request body.
type ReceiptHandler struct {
	pdfService *pdf.Service
	logger     logrus.FieldLogger
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(pdfService *pdf.Service, logger logrus.FieldLogger) *ReceiptHandler {
	return &ReceiptHandler{pdfService: pdfService, logger: logger}
}

// GenerateReceipt handles POST /checkout/receipt. ?format=html returns the HTML preview.
func (h *ReceiptHandler) GenerateReceipt(c *gin.Context) {
	var confirmation order.Confirmation
	if err := c.ShouldBindJSON(&confirmation); err != nil {
		badRequest(c, err)
		return
	}
	if confirmation.OrderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Order number is required",
		})
		return
	}

	if c.Query("format") == "html" {
		html, err := h.pdfService.RenderHTML(&confirmation)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to render receipt",
			})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
		return
	}

	pdfBuffer, err := h.pdfService.GenerateReceipt(&confirmation)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"order_number": confirmation.OrderNumber,
			"error":        err.Error(),
		}).Error("Failed to generate receipt")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", confirmation.OrderNumber))
	c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
