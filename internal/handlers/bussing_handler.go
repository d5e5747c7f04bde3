package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/firstlovecenter/fl-admin-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BussingHandler handles bussing record HTTP requests
type BussingHandler struct {
	bussingService services.BussingService
}

// NewBussingHandler creates a new BussingHandler
func NewBussingHandler(bussingService services.BussingService) *BussingHandler {
	return &BussingHandler{
		bussingService: bussingService,
	}
}

// CreateRecord handles POST /bussing-records
func (h *BussingHandler) CreateRecord(c *gin.Context) {
	var req struct {
		BacentaID   string `json:"bacentaId" binding:"required"`
		ServiceDate string `json:"serviceDate" binding:"required"`
		PictureURL  string `json:"pictureUrl"`
		PictureData string `json:"pictureData"`
		SubmittedBy string `json:"submittedBy" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceDate, err := time.Parse("2006-01-02", req.ServiceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service date format (YYYY-MM-DD)"})
		return
	}

	record, err := h.bussingService.CreateFromMobilisationPicture(c, &services.CreateBussingRecordRequest{
		BacentaID:   req.BacentaID,
		ServiceDate: serviceDate,
		PictureURL:  req.PictureURL,
		PictureData: req.PictureData,
		SubmittedBy: req.SubmittedBy,
	})
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetRecordWithDate handles GET /bussing-records/:id
func (h *BussingHandler) GetRecordWithDate(c *gin.Context) {
	result, err := h.bussingService.GetRecordWithDate(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RefreshTarget handles POST /bussing-records/:id/refresh-target
func (h *BussingHandler) RefreshTarget(c *gin.Context) {
	record, err := h.bussingService.RefreshTargetSnapshot(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// RecordAttendance handles POST /bussing-records/:id/attendance
func (h *BussingHandler) RecordAttendance(c *gin.Context) {
	var req struct {
		Attendance *int `json:"attendance" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.bussingService.RecordAttendance(c, c.Param("id"), *req.Attendance)
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ConfirmRecord handles POST /bussing-records/:id/confirm
func (h *BussingHandler) ConfirmRecord(c *gin.Context) {
	adminID, _ := c.Get("userID")
	adminIDStr, _ := adminID.(string)
	if adminIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin identity missing from token"})
		return
	}

	record, err := h.bussingService.ConfirmRecord(c, c.Param("id"), adminIDStr)
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// SetSwellTopUp handles POST /bussing-records/:id/swell-top-up
func (h *BussingHandler) SetSwellTopUp(c *gin.Context) {
	record, err := h.bussingService.ComputeSwellTopUp(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// SetNormalTopUp handles POST /bussing-records/:id/normal-top-up
func (h *BussingHandler) SetNormalTopUp(c *gin.Context) {
	record, err := h.bussingService.ComputeNormalTopUp(c, c.Param("id"))
	if err != nil {
		respondBussingError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// SetSwellDate handles POST /service-days/swell
func (h *BussingHandler) SetSwellDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format (YYYY-MM-DD)"})
		return
	}

	day, err := h.bussingService.SetSwellDate(c, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set swell date: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetRecordsByBacenta handles GET /bussing-records/bacenta/:bacentaId
func (h *BussingHandler) GetRecordsByBacenta(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	records, err := h.bussingService.GetRecordsByBacenta(c, c.Param("bacentaId"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetRecordsByDateRange handles GET /bussing-records
func (h *BussingHandler) GetRecordsByDateRange(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	startDate, err := time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date format (YYYY-MM-DD)"})
		return
	}
	endDate, err := time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date format (YYYY-MM-DD)"})
		return
	}
	// Include the end date itself in the range
	endDate = endDate.Add(24 * time.Hour)

	records, err := h.bussingService.GetRecordsByDateRange(c, startDate, endDate, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// respondBussingError maps service sentinels onto HTTP statuses
func respondBussingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrBacentaNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrServiceLogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidAttendance),
		errors.Is(err, services.ErrMissingPicture),
		errors.Is(err, services.ErrNotSwellDate),
		errors.Is(err, services.ErrSwellDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotConfirmed),
		errors.Is(err, services.ErrAlreadyAllocated):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
