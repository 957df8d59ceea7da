package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/softkr/timeheair/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardOverview(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter()

	seedSeat(t, db, 1)
	seedSeat(t, db, 2)
	seedStaff(t, db, "s001", "직원1")
	seedMember(t, db, "김회원", "01012345678", 0)

	// Occupy seat 1
	w := doRequest(t, r, "POST", "/api/seats/1/start", startBody("s001", "직원1"))
	require.Equal(t, http.StatusOK, w.Code)

	now := time.Now()
	require.NoError(t, db.Create(&models.LedgerEntry{
		MemberName: "손님", SeatID: 2, StaffID: "s001", StaffName: "직원1",
		TotalPrice: 20000, CompletedAt: now,
	}).Error)
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	require.NoError(t, db.Create(&models.Reservation{
		MemberName: "예약손님", StaffID: "s001", StaffName: "직원1",
		TotalPrice: 11000, ReservedAt: noon,
		Status: models.ReservationScheduled,
	}).Error)

	w = doRequest(t, r, "GET", "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var overview struct {
		Seats             []models.Seat        `json:"seats"`
		SeatsInUse        int                  `json:"seatsInUse"`
		TodayRevenue      int64                `json:"todayRevenue"`
		TodayCount        int64                `json:"todayCount"`
		TodayReservations []models.Reservation `json:"todayReservations"`
		TotalMembers      int64                `json:"totalMembers"`
	}
	decodeBody(t, w, &overview)

	assert.Len(t, overview.Seats, 2)
	assert.Equal(t, 1, overview.SeatsInUse)
	assert.EqualValues(t, 20000, overview.TodayRevenue)
	assert.EqualValues(t, 1, overview.TodayCount)
	assert.Len(t, overview.TodayReservations, 1)
	assert.EqualValues(t, 1, overview.TotalMembers)
}
