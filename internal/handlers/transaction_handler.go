package handlers

import (
	"net/http"

	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction id HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// SetTransactionID handles POST /bussing-records/:id/transaction-id
func (h *TransactionHandler) SetTransactionID(c *gin.Context) {
	receipt, err := h.transactionService.AllocateTransactionID(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// RemoveTransactionID handles DELETE /bussing-records/:id/transaction-id
func (h *TransactionHandler) RemoveTransactionID(c *gin.Context) {
	record, err := h.transactionService.RemoveTransactionID(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// CheckTransactionID handles GET /bussing-records/:id/transaction-id/check
func (h *TransactionHandler) CheckTransactionID(c *gin.Context) {
	record, err := h.transactionService.CheckTransactionID(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
