package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerEntry is one completed session. The ledger is append-only: entries
// are written exactly once on completion and no update or delete path
// exists. All revenue reporting reads from here.
type LedgerEntry struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	ReservationID *string           `json:"reservationId,omitempty"`
	MemberID      *string           `json:"memberId,omitempty"`
	MemberName    string            `json:"memberName" gorm:"not null"`
	SeatID        int               `json:"seatId"`
	StaffID       string            `json:"staffId" gorm:"not null"`
	StaffName     string            `json:"staffName" gorm:"not null"`
	Services      []SelectedService `json:"services" gorm:"foreignKey:LedgerEntryID"`
	TotalPrice    int               `json:"totalPrice" gorm:"default:0"`
	CompletedAt   time.Time         `json:"completedAt" gorm:"index"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// LedgerSummary is the aggregate view over a date range.
type LedgerSummary struct {
	TotalRevenue  int            `json:"totalRevenue"`
	TotalCount    int            `json:"totalCount"`
	AverageTicket int            `json:"averageTicket"`
	BySeat        []SeatRevenue  `json:"bySeat"`
	ByStaff       []StaffRevenue `json:"byStaff"`
	ByService     []ServiceCount `json:"byService"`
}

// SeatRevenue is revenue grouped per seat.
type SeatRevenue struct {
	SeatID   int    `json:"seatId"`
	SeatName string `json:"seatName"`
	Revenue  int    `json:"revenue"`
	Count    int    `json:"count"`
}

// StaffRevenue is revenue grouped per staff member. StaffName is the
// staff record's current name so renamed staff show consistently in
// reports; individual entries keep their historical snapshot.
type StaffRevenue struct {
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
	Revenue   int    `json:"revenue"`
	Count     int    `json:"count"`
}

// ServiceCount is per-service sales volume.
type ServiceCount struct {
	ServiceName string `json:"serviceName"`
	Count       int    `json:"count"`
	Revenue     int    `json:"revenue"`
}

// DailyRevenue is one day's bucket in the monthly view.
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
	Count   int    `json:"count"`
}
