package controllers

import (
	"errors"
	"net/http"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceMenus retrieves the catalog, optionally only active items or
// a single category
func GetServiceMenus(c *gin.Context) {
	query := config.DB.Order("category ASC, id ASC")

	if c.Query("active") == "true" {
		query = query.Where("is_active = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var menus []models.ServiceMenu
	if err := query.Find(&menus).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service menu")
		return
	}

	c.JSON(http.StatusOK, menus)
}

// GetServiceMenu retrieves a specific catalog item by ID
func GetServiceMenu(c *gin.Context) {
	var menu models.ServiceMenu
	if err := config.DB.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, menu)
}

// ResolvePrice resolves the committed price for {service, length}. The
// caller copies the result into the selection; the catalog is never read
// again for a running session.
func ResolvePrice(c *gin.Context) {
	var menu models.ServiceMenu
	if err := config.DB.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	price, err := menu.PriceFor(c.Query("length"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Length required: short, medium or long")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"serviceId": menu.ID,
		"name":      menu.Name,
		"length":    c.Query("length"),
		"price":     price,
	})
}

// CreateServiceMenu adds a catalog item. An item carries either a flat
// price or all three length tiers.
func CreateServiceMenu(c *gin.Context) {
	var input models.ServiceMenuRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validMenuPricing(&input) {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide either a flat price or all three tier prices")
		return
	}

	menu := models.ServiceMenu{
		ID:          uuid.New().String(),
		Category:    input.Category,
		Name:        input.Name,
		Price:       input.Price,
		PriceShort:  input.PriceShort,
		PriceMedium: input.PriceMedium,
		PriceLong:   input.PriceLong,
		IsActive:    true,
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}

	if err := config.DB.Create(&menu).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, menu)
}

// UpdateServiceMenu edits a catalog item. Sessions, reservations and
// ledger entries already carry copied prices and are unaffected.
func UpdateServiceMenu(c *gin.Context) {
	var menu models.ServiceMenu
	if err := config.DB.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input models.ServiceMenuRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validMenuPricing(&input) {
		utils.RespondWithError(c, http.StatusBadRequest, "Provide either a flat price or all three tier prices")
		return
	}

	menu.Category = input.Category
	menu.Name = input.Name
	menu.Price = input.Price
	menu.PriceShort = input.PriceShort
	menu.PriceMedium = input.PriceMedium
	menu.PriceLong = input.PriceLong
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&menu).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, menu)
}

// DeleteServiceMenu soft deletes a catalog item
func DeleteServiceMenu(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.ServiceMenu{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

func validMenuPricing(input *models.ServiceMenuRequest) bool {
	if input.Price != nil {
		return input.PriceShort == nil && input.PriceMedium == nil && input.PriceLong == nil
	}
	return input.PriceShort != nil && input.PriceMedium != nil && input.PriceLong != nil
}
