package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatus is the lifecycle state of a booking.
type ReservationStatus string

const (
	ReservationScheduled  ReservationStatus = "scheduled"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// reservationTransitions lists the legal status moves. Everything else is
// rejected with a conflict.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationScheduled:  {ReservationInProgress, ReservationCancelled},
	ReservationInProgress: {ReservationCompleted},
}

// CanTransitionTo reports whether moving from s to next is a legal
// reservation status change.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Valid reports whether the status is one of the known values.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationScheduled, ReservationInProgress, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Reservation is a scheduled future session. SeatID stays nil until the
// reservation is promoted into an active session on a seat.
type Reservation struct {
	ID                string            `json:"id" gorm:"primaryKey"`
	MemberID          *string           `json:"memberId,omitempty"`
	MemberName        string            `json:"memberName" gorm:"not null"`
	MemberPhone       *string           `json:"memberPhone,omitempty"`
	SeatID            *int              `json:"seatId,omitempty"`
	StaffID           string            `json:"staffId" gorm:"not null"`
	StaffName         string            `json:"staffName" gorm:"not null"`
	Services          []SelectedService `json:"services" gorm:"foreignKey:ReservationID"`
	TotalPrice        int               `json:"totalPrice" gorm:"default:0"`
	ReservedAt        time.Time         `json:"reservedAt"`
	EstimatedDuration int               `json:"estimatedDuration"` // minutes
	Status            ReservationStatus `json:"status" gorm:"default:scheduled"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt    `json:"-" gorm:"index"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

// ReservationRequest defines the expected JSON structure for creating or
// updating a reservation
type ReservationRequest struct {
	MemberID          *string           `json:"memberId,omitempty"`
	MemberName        string            `json:"memberName" binding:"required"`
	MemberPhone       *string           `json:"memberPhone,omitempty"`
	SeatID            *int              `json:"seatId,omitempty"`
	StaffID           string            `json:"staffId" binding:"required"`
	StaffName         string            `json:"staffName" binding:"required"`
	Services          []SelectedService `json:"services" binding:"required,min=1"`
	TotalPrice        int               `json:"totalPrice" binding:"required"`
	ReservedAt        string            `json:"reservedAt" binding:"required"`
	EstimatedDuration int               `json:"estimatedDuration" binding:"required"`
}
