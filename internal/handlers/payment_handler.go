package handlers

import (
	"errors"
	"net/http"

	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment gateway webhook deliveries
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Webhook handles POST /webhooks/paystack.
// The response is deliberately terse: gateway senders are unauthenticated, so
// internal error detail never leaves this handler. An unmatched reference
// gets a 404 so the gateway's retry machinery can tell it apart from success.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var payload struct {
		Data struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
		} `json:"data"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Data.Reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "invalid"})
		return
	}

	_, err := h.paymentService.ReconcilePayment(c, payload.Data.Reference, payload.Data.Status)
	if err != nil {
		if errors.Is(err, services.ErrUnreconciledPayment) {
			c.JSON(http.StatusNotFound, gin.H{"status": "unreconciled"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
