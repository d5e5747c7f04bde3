package services

import (
	"github.com/firstlovecenter/fl-admin-backend/internal/models"
)

// MinBussingAttendance is the attendance threshold below which no top-up is
// paid, regardless of date type.
const MinBussingAttendance = 8

// CalculateTopUp determines the subsidy for a bussing record from the
// bacenta's configured costs. Swell dates use the swell schedule, every
// other date the normal one.
func CalculateTopUp(attendance int, swell bool, bacenta *models.Bacenta) float64 {
	if attendance < MinBussingAttendance {
		return 0
	}
	if swell {
		return bacenta.SwellBussingCost - bacenta.SwellPersonalContribution
	}
	return bacenta.NormalBussingCost - bacenta.NormalPersonalContribution
}

// applyTopUp stamps the computed amount on the record. Above the threshold
// the bacenta's momo details are snapshotted alongside, so later bacenta
// edits cannot retroactively change where a historical payout went.
func applyTopUp(record *models.BussingRecord, swell bool, bacenta *models.Bacenta) {
	record.BussingTopUp = CalculateTopUp(record.Attendance, swell, bacenta)
	if record.Attendance < MinBussingAttendance {
		return
	}
	record.MomoNumber = bacenta.MomoNumber
	record.MobileNetwork = bacenta.MobileNetwork
	record.MomoName = bacenta.MomoName
}
