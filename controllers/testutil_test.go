package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database and points the global
// connection at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Staff{},
		&models.Seat{},
		&models.ServiceSession{},
		&models.SelectedService{},
		&models.Reservation{},
		&models.LedgerEntry{},
		&models.ServiceMenu{},
		&models.ReminderLog{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	config.DB = db
	return db
}

// newTestRouter wires all handlers without the auth middleware.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	members := r.Group("/api/members")
	{
		members.POST("", CreateMember)
		members.GET("", GetMembers)
		members.GET("/search", SearchMemberByPhone)
		members.GET("/:id", GetMember)
		members.PUT("/:id", UpdateMember)
		members.DELETE("/:id", DeleteMember)
		members.POST("/:id/stamp", AddStamp)
		members.POST("/:id/use-stamps", UseStamps)
	}

	staff := r.Group("/api/staff")
	{
		staff.GET("", GetStaffList)
		staff.GET("/:id", GetStaff)
		staff.POST("", CreateStaff)
		staff.PUT("/:id", UpdateStaff)
		staff.DELETE("/:id", DeleteStaff)
	}

	seats := r.Group("/api/seats")
	{
		seats.GET("", GetSeats)
		seats.GET("/:id", GetSeat)
		seats.POST("/:id/start", StartService)
		seats.POST("/:id/complete", CompleteService)
		seats.POST("/:id/cancel", CancelService)
	}

	reservations := r.Group("/api/reservations")
	{
		reservations.GET("", GetReservations)
		reservations.GET("/:id", GetReservation)
		reservations.POST("", CreateReservation)
		reservations.PUT("/:id", UpdateReservation)
		reservations.PATCH("/:id/status", UpdateReservationStatus)
		reservations.DELETE("/:id", DeleteReservation)
	}

	servicesGroup := r.Group("/api/services")
	{
		servicesGroup.GET("", GetServiceMenus)
		servicesGroup.GET("/:id", GetServiceMenu)
		servicesGroup.GET("/:id/price", ResolvePrice)
		servicesGroup.POST("", CreateServiceMenu)
		servicesGroup.PUT("/:id", UpdateServiceMenu)
		servicesGroup.DELETE("/:id", DeleteServiceMenu)
	}

	lc := LedgerController{}
	ledger := r.Group("/api/ledger")
	{
		ledger.GET("", lc.GetLedgerEntries)
		ledger.GET("/summary", lc.GetLedgerSummary)
		ledger.GET("/daily", lc.GetDailySummary)
	}

	r.GET("/api/dashboard", GetDashboardOverview)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func seedSeat(t *testing.T, db *gorm.DB, id int) models.Seat {
	t.Helper()
	seat := models.Seat{ID: id, Name: fmt.Sprintf("%d번 좌석", id), Status: models.SeatAvailable}
	if err := db.Create(&seat).Error; err != nil {
		t.Fatalf("failed to seed seat: %v", err)
	}
	return seat
}

func seedStaff(t *testing.T, db *gorm.DB, id, name string) models.Staff {
	t.Helper()
	staff := models.Staff{ID: id, Name: name}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("failed to seed staff: %v", err)
	}
	return staff
}

func seedMember(t *testing.T, db *gorm.DB, name, phone string, stamps int) models.Member {
	t.Helper()
	member := models.Member{Name: name, Phone: phone, Stamps: stamps}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}
