package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Hair length tiers for tiered pricing.
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

var ErrLengthRequired = errors.New("length required for tiered service")

// ServiceMenu is a catalog item. An item has either a flat Price or the
// three length-tier prices. The catalog is mutable reference data: prices
// are resolved once at selection time and copied into the session or
// reservation, never re-read afterwards.
type ServiceMenu struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Category    string         `json:"category" gorm:"not null"`
	Name        string         `json:"name" gorm:"not null"`
	Price       *int           `json:"price,omitempty"`
	PriceShort  *int           `json:"priceShort,omitempty"`
	PriceMedium *int           `json:"priceMedium,omitempty"`
	PriceLong   *int           `json:"priceLong,omitempty"`
	// No gorm default here: a default tag makes Create skip the zero
	// value, so an explicitly inactive item would be stored active.
	IsActive    bool           `json:"isActive"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Tiered reports whether the item prices by hair length.
func (s *ServiceMenu) Tiered() bool {
	return s.Price == nil
}

// PriceFor resolves the committed price for a selection. Flat items ignore
// length; tiered items require one of short/medium/long.
func (s *ServiceMenu) PriceFor(length string) (int, error) {
	if s.Price != nil {
		return *s.Price, nil
	}
	switch length {
	case LengthShort:
		if s.PriceShort != nil {
			return *s.PriceShort, nil
		}
	case LengthMedium:
		if s.PriceMedium != nil {
			return *s.PriceMedium, nil
		}
	case LengthLong:
		if s.PriceLong != nil {
			return *s.PriceLong, nil
		}
	}
	return 0, ErrLengthRequired
}

// ServiceMenuRequest defines the expected JSON structure for creating or
// updating a catalog item
type ServiceMenuRequest struct {
	Category    string `json:"category" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Price       *int   `json:"price" binding:"omitempty,min=0"`
	PriceShort  *int   `json:"priceShort" binding:"omitempty,min=0"`
	PriceMedium *int   `json:"priceMedium" binding:"omitempty,min=0"`
	PriceLong   *int   `json:"priceLong" binding:"omitempty,min=0"`
	IsActive    *bool  `json:"isActive"`
}
