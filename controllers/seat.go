package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSeats retrieves the seat floor with active sessions preloaded
func GetSeats(c *gin.Context) {
	var seats []models.Seat
	if err := config.DB.Preload("CurrentSession.Services").Preload("CurrentSession").
		Order("id ASC").Find(&seats).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve seats")
		return
	}

	c.JSON(http.StatusOK, seats)
}

// GetSeat retrieves a specific seat by ID
func GetSeat(c *gin.Context) {
	var seat models.Seat
	if err := config.DB.Preload("CurrentSession.Services").Preload("CurrentSession").
		First(&seat, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Seat not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, seat)
}

// StartService opens a session on an available seat. The committed prices
// and the staff/member name snapshots are fixed here; later catalog or
// roster edits never reach a running session.
func StartService(c *gin.Context) {
	id := c.Param("id")

	var seat models.Seat
	if err := config.DB.First(&seat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Seat not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if seat.Status != models.SeatAvailable {
		utils.RespondWithError(c, http.StatusConflict, "Seat is already occupied")
		return
	}

	var input models.StartServiceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// The total is a committed value, not something to recompute later; it
	// must match the selection at the moment it is locked in.
	if input.TotalPrice != models.ServicesTotal(input.Services) {
		utils.RespondWithError(c, http.StatusBadRequest, "Total price does not match selected services")
		return
	}

	// Validate referenced staff
	var staff models.Staff
	if err := config.DB.First(&staff, "id = ?", input.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Staff not found: "+input.StaffID)
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Validate referenced member, if any
	if input.MemberID != nil {
		var member models.Member
		if err := config.DB.First(&member, "id = ?", *input.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Member not found: "+*input.MemberID)
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	// Validate referenced reservation, if any
	var reservation *models.Reservation
	if input.ReservationID != nil {
		var r models.Reservation
		if err := config.DB.First(&r, "id = ?", *input.ReservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Reservation not found: "+*input.ReservationID)
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if r.Status != models.ReservationScheduled {
			utils.RespondWithError(c, http.StatusConflict, "Reservation is not in scheduled status")
			return
		}
		reservation = &r
	}

	sessionID := uuid.New().String()

	services := make([]models.SelectedService, len(input.Services))
	for i, s := range input.Services {
		services[i] = models.SelectedService{
			ServiceSessionID: &sessionID,
			Name:             s.Name,
			Length:           s.Length,
			Price:            s.Price,
		}
	}

	session := models.ServiceSession{
		ID:            sessionID,
		SeatID:        seat.ID,
		MemberID:      input.MemberID,
		MemberName:    input.MemberName,
		Services:      services,
		TotalPrice:    input.TotalPrice,
		StaffID:       input.StaffID,
		StaffName:     input.StaffName,
		StartTime:     time.Now(),
		ReservationID: input.ReservationID,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		seat.Status = models.SeatInUse
		if err := tx.Save(&seat).Error; err != nil {
			return err
		}

		if reservation != nil {
			if err := tx.Model(&models.Reservation{}).Where("id = ?", reservation.ID).
				Updates(map[string]interface{}{
					"status":  models.ReservationInProgress,
					"seat_id": seat.ID,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to start service")
		return
	}

	config.DB.Preload("CurrentSession.Services").Preload("CurrentSession").First(&seat, "id = ?", id)

	c.JSON(http.StatusOK, seat)
}

// CompleteService closes the seat's active session: one ledger entry is
// appended, the member earns a stamp, the linked reservation is marked
// completed and the seat frees up. The writes run in a single transaction
// so a failure leaves the seat state untouched.
func CompleteService(c *gin.Context) {
	id := c.Param("id")

	var seat models.Seat
	if err := config.DB.Preload("CurrentSession.Services").Preload("CurrentSession").
		First(&seat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Seat not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if seat.Status != models.SeatInUse || seat.CurrentSession == nil {
		utils.RespondWithError(c, http.StatusConflict, "No active session on this seat")
		return
	}

	session := seat.CurrentSession
	ledgerID := uuid.New().String()

	services := make([]models.SelectedService, len(session.Services))
	for i, s := range session.Services {
		services[i] = models.SelectedService{
			LedgerEntryID: &ledgerID,
			Name:          s.Name,
			Length:        s.Length,
			Price:         s.Price,
		}
	}

	entry := models.LedgerEntry{
		ID:            ledgerID,
		ReservationID: session.ReservationID,
		MemberID:      session.MemberID,
		MemberName:    session.MemberName,
		SeatID:        seat.ID,
		StaffID:       session.StaffID,
		StaffName:     session.StaffName,
		Services:      services,
		TotalPrice:    session.TotalPrice,
		CompletedAt:   time.Now(),
	}

	var stamps *int

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if session.MemberID != nil {
			if err := tx.Model(&models.Member{}).Where("id = ?", *session.MemberID).
				UpdateColumn("stamps", gorm.Expr("stamps + ?", 1)).Error; err != nil {
				return err
			}
			var member models.Member
			if err := tx.First(&member, "id = ?", *session.MemberID).Error; err != nil {
				return err
			}
			stamps = &member.Stamps
		}

		if session.ReservationID != nil {
			if err := tx.Model(&models.Reservation{}).Where("id = ?", *session.ReservationID).
				Update("status", models.ReservationCompleted).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("service_session_id = ?", session.ID).
			Delete(&models.SelectedService{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ServiceSession{}, "id = ?", session.ID).Error; err != nil {
			return err
		}

		seat.Status = models.SeatAvailable
		seat.CurrentSession = nil
		return tx.Save(&seat).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete service")
		return
	}

	response := gin.H{
		"message": "Service completed",
		"ledger":  entry,
	}
	if stamps != nil {
		response["stamps"] = *stamps
	}

	c.JSON(http.StatusOK, response)
}

// CancelService discards the seat's active session. Nothing reaches the
// ledger and no stamps move; a linked reservation drops back to scheduled.
func CancelService(c *gin.Context) {
	id := c.Param("id")

	var seat models.Seat
	if err := config.DB.Preload("CurrentSession").First(&seat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Seat not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if seat.Status != models.SeatInUse || seat.CurrentSession == nil {
		utils.RespondWithError(c, http.StatusConflict, "No active session on this seat")
		return
	}

	session := seat.CurrentSession

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if session.ReservationID != nil {
			if err := tx.Model(&models.Reservation{}).Where("id = ?", *session.ReservationID).
				Update("status", models.ReservationScheduled).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("service_session_id = ?", session.ID).
			Delete(&models.SelectedService{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ServiceSession{}, "id = ?", session.ID).Error; err != nil {
			return err
		}

		seat.Status = models.SeatAvailable
		seat.CurrentSession = nil
		return tx.Save(&seat).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service cancelled"})
}
