package controllers

import (
	"net/http"
	"time"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview returns the front-desk landing view: the seat
// floor with running sessions, today's revenue and the day's upcoming
// reservations.
func GetDashboardOverview(c *gin.Context) {
	var seats []models.Seat
	if err := config.DB.Preload("CurrentSession.Services").Preload("CurrentSession").
		Order("id ASC").Find(&seats).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve seats")
		return
	}

	seatsInUse := 0
	for _, s := range seats {
		if s.Status == models.SeatInUse {
			seatsInUse++
		}
	}

	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := utils.NextDay(now)

	var todayRevenue int64
	config.DB.Model(&models.LedgerEntry{}).
		Where("completed_at >= ? AND completed_at < ?", today, tomorrow).
		Select("COALESCE(SUM(total_price), 0)").Scan(&todayRevenue)

	var todayCount int64
	config.DB.Model(&models.LedgerEntry{}).
		Where("completed_at >= ? AND completed_at < ?", today, tomorrow).
		Count(&todayCount)

	var todayReservations []models.Reservation
	config.DB.Preload("Services").
		Where("reserved_at >= ? AND reserved_at < ? AND status = ?", today, tomorrow, models.ReservationScheduled).
		Order("reserved_at ASC").
		Find(&todayReservations)

	var totalMembers int64
	config.DB.Model(&models.Member{}).Count(&totalMembers)

	c.JSON(http.StatusOK, gin.H{
		"seats":             seats,
		"seatsInUse":        seatsInUse,
		"todayRevenue":      todayRevenue,
		"todayCount":        todayCount,
		"todayReservations": todayReservations,
		"totalMembers":      totalMembers,
	})
}
