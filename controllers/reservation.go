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

// UpdateReservationStatusInput defines the expected JSON structure for a
// status change
type UpdateReservationStatusInput struct {
	Status models.ReservationStatus `json:"status" binding:"required"`
}

// GetReservations retrieves reservations, by default only upcoming or
// running ones
func GetReservations(c *gin.Context) {
	query := config.DB.Preload("Services").Order("reserved_at ASC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		query = query.Where("reserved_at >= ? AND reserved_at < ?", utils.BeginningOfDay(day), utils.NextDay(day))
	}

	if c.Query("all") != "true" {
		today := utils.BeginningOfDay(time.Now())
		query = query.Where("reserved_at >= ? OR status = ?", today, models.ReservationInProgress)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a specific reservation by ID
func GetReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.Preload("Services").First(&reservation, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CreateReservation books a future session. Prices are committed values
// from the moment of booking.
func CreateReservation(c *gin.Context) {
	var input models.ReservationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservedAt, err := time.Parse(time.RFC3339, input.ReservedAt)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservedAt format, expected RFC3339")
		return
	}

	if input.TotalPrice != models.ServicesTotal(input.Services) {
		utils.RespondWithError(c, http.StatusBadRequest, "Total price does not match selected services")
		return
	}

	reservationID := uuid.New().String()

	services := make([]models.SelectedService, len(input.Services))
	for i, s := range input.Services {
		services[i] = models.SelectedService{
			ReservationID: &reservationID,
			Name:          s.Name,
			Length:        s.Length,
			Price:         s.Price,
		}
	}

	reservation := models.Reservation{
		ID:                reservationID,
		MemberID:          input.MemberID,
		MemberName:        input.MemberName,
		MemberPhone:       input.MemberPhone,
		SeatID:            input.SeatID,
		StaffID:           input.StaffID,
		StaffName:         input.StaffName,
		Services:          services,
		TotalPrice:        input.TotalPrice,
		ReservedAt:        reservedAt,
		EstimatedDuration: input.EstimatedDuration,
		Status:            models.ReservationScheduled,
	}

	if err := config.DB.Create(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		return
	}

	config.DB.Preload("Services").First(&reservation, "id = ?", reservation.ID)

	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation replaces the booking details of a scheduled
// reservation
func UpdateReservation(c *gin.Context) {
	id := c.Param("id")

	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input models.ReservationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservedAt, err := time.Parse(time.RFC3339, input.ReservedAt)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservedAt format, expected RFC3339")
		return
	}

	if input.TotalPrice != models.ServicesTotal(input.Services) {
		utils.RespondWithError(c, http.StatusBadRequest, "Total price does not match selected services")
		return
	}

	services := make([]models.SelectedService, len(input.Services))
	for i, s := range input.Services {
		services[i] = models.SelectedService{
			ReservationID: &id,
			Name:          s.Name,
			Length:        s.Length,
			Price:         s.Price,
		}
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		// Replace the service selection wholesale
		if err := tx.Where("reservation_id = ?", id).Delete(&models.SelectedService{}).Error; err != nil {
			return err
		}

		reservation.MemberID = input.MemberID
		reservation.MemberName = input.MemberName
		reservation.MemberPhone = input.MemberPhone
		reservation.SeatID = input.SeatID
		reservation.StaffID = input.StaffID
		reservation.StaffName = input.StaffName
		reservation.Services = services
		reservation.TotalPrice = input.TotalPrice
		reservation.ReservedAt = reservedAt
		reservation.EstimatedDuration = input.EstimatedDuration

		return tx.Save(&reservation).Error
	})
	if txErr != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
		return
	}

	config.DB.Preload("Services").First(&reservation, "id = ?", reservation.ID)

	c.JSON(http.StatusOK, reservation)
}

// UpdateReservationStatus applies an explicit status change, guarded by
// the legal transitions: scheduled moves to in_progress or cancelled,
// in_progress moves to completed. Everything else is rejected unchanged.
func UpdateReservationStatus(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateReservationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown reservation status")
		return
	}

	if !reservation.Status.CanTransitionTo(input.Status) {
		utils.RespondWithError(c, http.StatusConflict,
			"Cannot change reservation from "+string(reservation.Status)+" to "+string(input.Status))
		return
	}

	reservation.Status = input.Status
	if err := config.DB.Save(&reservation).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation status")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation removes a reservation and its service lines. Ledger
// entries that reference it are independent records and stay put.
func DeleteReservation(c *gin.Context) {
	id := c.Param("id")

	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reservation_id = ?", id).Delete(&models.SelectedService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reservation).Error
	})
	if txErr != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}
