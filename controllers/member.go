package controllers

import (
	"errors"
	"net/http"

	"github.com/softkr/timeheair/config"
	"github.com/softkr/timeheair/models"
	"github.com/softkr/timeheair/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMember creates a new member
func CreateMember(c *gin.Context) {
	var input models.MemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone already exists
	var existing models.Member
	if err := config.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Member with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	member := models.Member{
		Name:   input.Name,
		Phone:  input.Phone,
		Stamps: 0,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers retrieves all members, optionally filtered by a name/phone
// substring search
func GetMembers(c *gin.Context) {
	query := config.DB.Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember retrieves a specific member by ID
func GetMember(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// SearchMemberByPhone looks up a member by an exact phone match
func SearchMemberByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone number is required")
		return
	}

	var member models.Member
	if err := config.DB.Where("phone = ?", phone).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember updates an existing member
func UpdateMember(c *gin.Context) {
	id := c.Param("id")

	var member models.Member
	if err := config.DB.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input models.MemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if phone is being changed to another member's number
	if member.Phone != input.Phone {
		var existing models.Member
		if err := config.DB.Where("phone = ? AND id != ?", input.Phone, id).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another member with this phone number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	member.Name = input.Name
	member.Phone = input.Phone

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember soft deletes a member. Ledger entries keep the member's
// name snapshot, so history survives the delete.
func DeleteMember(c *gin.Context) {
	result := config.DB.Where("id = ?", c.Param("id")).Delete(&models.Member{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete member")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// AddStamp credits one loyalty stamp
func AddStamp(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	member.Stamps++
	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add stamp")
		return
	}

	c.JSON(http.StatusOK, member)
}

// UseStamps redeems the loyalty benefit: subtracts StampThreshold stamps,
// floored at zero. Fails when the member has not reached the threshold.
func UseStamps(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if member.Stamps < models.StampThreshold {
		utils.RespondWithError(c, http.StatusConflict, "Not enough stamps to redeem")
		return
	}

	member.Stamps -= models.StampThreshold
	if member.Stamps < 0 {
		member.Stamps = 0
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to use stamps")
		return
	}

	c.JSON(http.StatusOK, member)
}
