package services

import (
	"testing"

	"github.com/firstlovecenter/fl-admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func testBacenta() *models.Bacenta {
	return &models.Bacenta{
		ID:                         "bacenta-1",
		Name:                       "Accra Central",
		Target:                     25,
		SwellBussingCost:           800,
		SwellPersonalContribution:  150,
		NormalBussingCost:          500,
		NormalPersonalContribution: 100,
		MomoNumber:                 "0241234567",
		MobileNetwork:              "MTN",
		MomoName:                   "Ama Mensah",
	}
}

func TestCalculateTopUp_BelowThresholdIsZero(t *testing.T) {
	bacenta := testBacenta()

	for attendance := 0; attendance < MinBussingAttendance; attendance++ {
		assert.Zero(t, CalculateTopUp(attendance, false, bacenta), "attendance %d", attendance)
		assert.Zero(t, CalculateTopUp(attendance, true, bacenta), "attendance %d", attendance)
	}
}

func TestCalculateTopUp_NormalDate(t *testing.T) {
	bacenta := testBacenta()

	// cost minus personal contribution
	assert.Equal(t, 400.0, CalculateTopUp(MinBussingAttendance, false, bacenta))
	assert.Equal(t, 400.0, CalculateTopUp(30, false, bacenta))
}

func TestCalculateTopUp_SwellDate(t *testing.T) {
	bacenta := testBacenta()

	assert.Equal(t, 650.0, CalculateTopUp(MinBussingAttendance, true, bacenta))
	assert.Equal(t, 650.0, CalculateTopUp(100, true, bacenta))
}

func TestCalculateTopUp_ContributionExceedingCostGoesNegative(t *testing.T) {
	bacenta := testBacenta()
	bacenta.NormalPersonalContribution = 600

	// The calculator does not clamp; the configured costs are the authority
	assert.Equal(t, -100.0, CalculateTopUp(10, false, bacenta))
}

func TestApplyTopUp_SnapshotsMomoDetails(t *testing.T) {
	bacenta := testBacenta()
	record := &models.BussingRecord{ID: "record-1", Attendance: 12}

	applyTopUp(record, true, bacenta)

	assert.Equal(t, 650.0, record.BussingTopUp)
	assert.Equal(t, "0241234567", record.MomoNumber)
	assert.Equal(t, "MTN", record.MobileNetwork)
	assert.Equal(t, "Ama Mensah", record.MomoName)
}

func TestApplyTopUp_BelowThresholdLeavesMomoEmpty(t *testing.T) {
	bacenta := testBacenta()
	record := &models.BussingRecord{ID: "record-1", Attendance: MinBussingAttendance - 1}

	applyTopUp(record, true, bacenta)

	assert.Zero(t, record.BussingTopUp)
	assert.Empty(t, record.MomoNumber)
	assert.Empty(t, record.MobileNetwork)
	assert.Empty(t, record.MomoName)
}
