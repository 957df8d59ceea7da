// controllers/ledger.go
package controllers

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-gonic/gin"
)

// LedgerController handles the revenue ledger and its reporting views
type LedgerController struct{}

// GetLedgerEntries lists completed sessions, newest first
func (lc *LedgerController) GetLedgerEntries(c *gin.Context) {
	query := config.DB.Preload("Services").Order("completed_at DESC")

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("completed_at >= ? AND completed_at < ?", utils.BeginningOfDay(day), utils.NextDay(day))
	}

	if startDate := c.Query("startDate"); startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("completed_at >= ?", utils.BeginningOfDay(start))
	}
	if endDate := c.Query("endDate"); endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("completed_at < ?", utils.NextDay(end))
	}

	if staffID := c.Query("staffId"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var entries []models.LedgerEntry
	if err := query.Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetLedgerSummary aggregates the ledger over a date range. Presets:
// range=today|week|month; otherwise startDate/endDate (both inclusive);
// default is today. Optional staffId narrows the entries.
func (lc *LedgerController) GetLedgerSummary(c *gin.Context) {
	start, end, ok := lc.resolveRange(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Services").
		Where("completed_at >= ? AND completed_at < ?", start, end).
		Order("completed_at ASC")

	if staffID := c.Query("staffId"); staffID != "" {
		query = query.Where("staff_id = ?", staffID)
	}

	var entries []models.LedgerEntry
	if err := query.Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve ledger entries")
		return
	}

	var seats []models.Seat
	if err := config.DB.Order("id ASC").Find(&seats).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve seats")
		return
	}

	var staff []models.Staff
	if err := config.DB.Order("created_at ASC").Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	c.JSON(http.StatusOK, BuildLedgerSummary(entries, seats, staff))
}

// resolveRange turns the query parameters into a half-open [start, end)
// interval covering whole days.
func (lc *LedgerController) resolveRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()

	switch c.Query("range") {
	case "today":
		return utils.BeginningOfDay(now), utils.NextDay(now), true
	case "week":
		start, end := utils.WeekBounds(now)
		return start, end, true
	case "month":
		start, end := utils.MonthBounds(now)
		return start, end, true
	case "":
		// fall through to explicit dates
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown range, expected today, week or month")
		return time.Time{}, time.Time{}, false
	}

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		return utils.BeginningOfDay(day), utils.NextDay(day), true
	}

	if startDate := c.Query("startDate"); startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate format, expected YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		end := utils.NextDay(start)
		if endDate := c.Query("endDate"); endDate != "" {
			e, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate format, expected YYYY-MM-DD")
				return time.Time{}, time.Time{}, false
			}
			end = utils.NextDay(e)
		}
		return utils.BeginningOfDay(start), end, true
	}

	// Default: today
	return utils.BeginningOfDay(now), utils.NextDay(now), true
}

// BuildLedgerSummary derives the reporting aggregates from a set of
// ledger entries. Every known seat and staff member gets a group even at
// zero revenue; entries whose seat or staff no longer exists keep their
// snapshot identity in an extra group, so group sums always equal the
// range total. Groups are ordered by revenue descending, ties keeping
// the seat/roster order.
func BuildLedgerSummary(entries []models.LedgerEntry, seats []models.Seat, staff []models.Staff) models.LedgerSummary {
	summary := models.LedgerSummary{
		BySeat:    []models.SeatRevenue{},
		ByStaff:   []models.StaffRevenue{},
		ByService: []models.ServiceCount{},
	}

	seatIdx := make(map[int]int)
	for _, s := range seats {
		seatIdx[s.ID] = len(summary.BySeat)
		summary.BySeat = append(summary.BySeat, models.SeatRevenue{SeatID: s.ID, SeatName: s.Name})
	}

	staffIdx := make(map[string]int)
	for _, s := range staff {
		staffIdx[s.ID] = len(summary.ByStaff)
		// Reports show the roster's current name; the per-entry snapshot
		// stays historical.
		summary.ByStaff = append(summary.ByStaff, models.StaffRevenue{StaffID: s.ID, StaffName: s.Name})
	}

	serviceIdx := make(map[string]int)

	for _, entry := range entries {
		summary.TotalRevenue += entry.TotalPrice
		summary.TotalCount++

		i, ok := seatIdx[entry.SeatID]
		if !ok {
			i = len(summary.BySeat)
			seatIdx[entry.SeatID] = i
			summary.BySeat = append(summary.BySeat, models.SeatRevenue{SeatID: entry.SeatID, SeatName: fmt.Sprintf("%d번 좌석", entry.SeatID)})
		}
		summary.BySeat[i].Revenue += entry.TotalPrice
		summary.BySeat[i].Count++

		j, ok := staffIdx[entry.StaffID]
		if !ok {
			j = len(summary.ByStaff)
			staffIdx[entry.StaffID] = j
			summary.ByStaff = append(summary.ByStaff, models.StaffRevenue{StaffID: entry.StaffID, StaffName: entry.StaffName})
		}
		summary.ByStaff[j].Revenue += entry.TotalPrice
		summary.ByStaff[j].Count++

		for _, service := range entry.Services {
			k, ok := serviceIdx[service.Name]
			if !ok {
				k = len(summary.ByService)
				serviceIdx[service.Name] = k
				summary.ByService = append(summary.ByService, models.ServiceCount{ServiceName: service.Name})
			}
			summary.ByService[k].Count++
			summary.ByService[k].Revenue += service.Price
		}
	}

	if summary.TotalCount > 0 {
		summary.AverageTicket = int(math.Round(float64(summary.TotalRevenue) / float64(summary.TotalCount)))
	}

	sort.SliceStable(summary.BySeat, func(a, b int) bool {
		return summary.BySeat[a].Revenue > summary.BySeat[b].Revenue
	})
	sort.SliceStable(summary.ByStaff, func(a, b int) bool {
		return summary.ByStaff[a].Revenue > summary.ByStaff[b].Revenue
	})
	sort.SliceStable(summary.ByService, func(a, b int) bool {
		return summary.ByService[a].Revenue > summary.ByService[b].Revenue
	})

	return summary
}

// GetDailySummary buckets a month's revenue by day
func (lc *LedgerController) GetDailySummary(c *gin.Context) {
	year := c.Query("year")
	month := c.Query("month")

	if year == "" || month == "" {
		now := time.Now()
		year = now.Format("2006")
		month = now.Format("01")
	}

	// Local bounds, matching the summary's month range
	at, err := time.ParseInLocation("2006-01", year+"-"+month, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid year/month")
		return
	}
	startDate, endDate := utils.MonthBounds(at)

	var results []models.DailyRevenue
	if err := config.DB.Model(&models.LedgerEntry{}).
		Select("DATE(completed_at) as date, SUM(total_price) as revenue, COUNT(*) as count").
		Where("completed_at >= ? AND completed_at < ?", startDate, endDate).
		Group("DATE(completed_at)").
		Order("date ASC").
		Scan(&results).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to aggregate daily revenue")
		return
	}

	c.JSON(http.StatusOK, results)
}
