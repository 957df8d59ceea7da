package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records one SMS reminder attempt for a reservation.
type ReminderLog struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	ReservationID string         `json:"reservationId" gorm:"index;not null"`
	Phone         string         `json:"phone" gorm:"not null"`
	Message       string         `json:"message" gorm:"type:text"`
	Status        string         `json:"status" gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage  string         `json:"errorMessage,omitempty" gorm:"type:text"`
	SentAt        time.Time      `json:"sentAt"`
	CreatedAt     time.Time      `json:"createdAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
