package models

import (
	"time"

	"gorm.io/gorm"
)

// SeatStatus is the occupancy state of a service station.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatInUse     SeatStatus = "in_use"
	// SeatReserved exists in the floor plan data but no operation sets it
	// yet; seats move only between available and in_use.
	SeatReserved SeatStatus = "reserved"
)

// Seat is a physical service station. It holds at most one active session:
// CurrentSession is non-nil exactly when Status is in_use.
type Seat struct {
	ID             int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string          `json:"name" gorm:"not null"`
	Status         SeatStatus      `json:"status" gorm:"default:available"`
	CurrentSession *ServiceSession `json:"currentSession,omitempty" gorm:"foreignKey:SeatID"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt  `json:"-" gorm:"index"`
}

// ServiceSession is an in-progress engagement on a seat. It lives only
// while the seat is in_use: completion converts it into a LedgerEntry,
// cancellation discards it.
type ServiceSession struct {
	ID            string            `json:"id" gorm:"primaryKey"`
	SeatID        int               `json:"seatId" gorm:"index"`
	MemberID      *string           `json:"memberId,omitempty"`
	MemberName    string            `json:"memberName" gorm:"not null"`
	Services      []SelectedService `json:"services" gorm:"foreignKey:ServiceSessionID"`
	TotalPrice    int               `json:"totalPrice" gorm:"default:0"`
	StaffID       string            `json:"staffId" gorm:"not null"`
	StaffName     string            `json:"staffName" gorm:"not null"`
	StartTime     time.Time         `json:"startTime"`
	ReservationID *string           `json:"reservationId,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SelectedService is a service line item with its price copied by value at
// selection time. Catalog edits after the fact never touch committed rows.
// Each row belongs to exactly one of: session, reservation, ledger entry.
type SelectedService struct {
	ID               uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	ServiceSessionID *string `json:"-" gorm:"index"`
	ReservationID    *string `json:"-" gorm:"index"`
	LedgerEntryID    *string `json:"-" gorm:"index"`
	Name             string  `json:"name" gorm:"not null"`
	Length           *string `json:"length,omitempty"` // short, medium, long
	Price            int     `json:"price" gorm:"default:0"`
}

// StartServiceRequest defines the expected JSON structure for starting a
// session on a seat
type StartServiceRequest struct {
	MemberID      *string           `json:"memberId,omitempty"`
	MemberName    string            `json:"memberName" binding:"required"`
	Services      []SelectedService `json:"services" binding:"required,min=1"`
	TotalPrice    int               `json:"totalPrice" binding:"required"`
	StaffID       string            `json:"staffId" binding:"required"`
	StaffName     string            `json:"staffName" binding:"required"`
	ReservationID *string           `json:"reservationId,omitempty"`
}

// ServicesTotal sums the line-item prices of a service selection.
func ServicesTotal(services []SelectedService) int {
	total := 0
	for _, s := range services {
		total += s.Price
	}
	return total
}
