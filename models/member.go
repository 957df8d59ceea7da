package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StampThreshold is the number of loyalty stamps that unlocks a benefit.
// Reaching it is display-only; redemption is the explicit use-stamps action.
const StampThreshold = 10

// Member is a registered customer with a loyalty-stamp counter. One stamp
// is credited per completed session tied to the member; guest sessions
// earn nothing.
type Member struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Phone           string         `json:"phone" gorm:"uniqueIndex"`
	Stamps          int            `json:"stamps" gorm:"default:0"`
	BenefitEligible bool           `json:"benefitEligible" gorm:"-"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (m *Member) AfterFind(tx *gorm.DB) error {
	m.BenefitEligible = m.Stamps >= StampThreshold
	return nil
}

func (m *Member) AfterSave(tx *gorm.DB) error {
	m.BenefitEligible = m.Stamps >= StampThreshold
	return nil
}

// MemberRequest defines the expected JSON structure for creating or
// updating a member
type MemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}
