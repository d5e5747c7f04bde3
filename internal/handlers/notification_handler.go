package handlers

import (
	"net/http"
	"strconv"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/firstlovecenter/fl-admin-backend/internal/repositories"
	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService services.NotificationService
	notificationRepo    repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(
	notificationService services.NotificationService,
	notificationRepo repositories.NotificationRepository,
) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		notificationRepo:    notificationRepo,
	}
}

// SendSMS handles POST /notifications/send-sms
func (h *NotificationHandler) SendSMS(c *gin.Context) {
	var req struct {
		PhoneNumber string `json:"phoneNumber" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification, err := h.notificationService.SendSMS(c, req.PhoneNumber, req.Content, models.NotificationTypeAdhoc, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send SMS: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, notification)
}

// GetNotificationsByStatus handles GET /notifications/status/:status
func (h *NotificationHandler) GetNotificationsByStatus(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	notifications, err := h.notificationRepo.FindByStatus(c, c.Param("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notifications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetNotificationCount handles GET /notifications/count
func (h *NotificationHandler) GetNotificationCount(c *gin.Context) {
	count, err := h.notificationRepo.Count(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notification count: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
