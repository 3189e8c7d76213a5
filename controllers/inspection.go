package controllers

import (
	"errors"
	"net/http"

	"autocheck-backend/config"
	"autocheck-backend/models"
	"autocheck-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddInspectionItemInput defines the expected JSON structure for a
// checklist entry
type AddInspectionItemInput struct {
	Category string `json:"category" binding:"required"`
	ItemName string `json:"itemName" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=ok attention critical"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url"`
	VideoURL string `json:"videoUrl" binding:"omitempty,url"`
}

// AddInspectionItem records a checklist entry against a service order
func AddInspectionItem(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input AddInspectionItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Order must exist before anything is attached to it
	var order models.ServiceOrder
	if err := config.DB.First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	item := models.InspectionItem{
		ServiceOrderID: order.ID,
		Category:       input.Category,
		ItemName:       input.ItemName,
		Status:         input.Status,
		Notes:          input.Notes,
		PhotoURL:       input.PhotoURL,
		VideoURL:       input.VideoURL,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create inspection item")
		return
	}

	utils.FlushResponseCache()

	c.JSON(http.StatusCreated, item)
}

// GetInspectionItems lists an order's checklist entries
func GetInspectionItems(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var items []models.InspectionItem
	if err := config.DB.Where("service_order_id = ?", orderUUID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve inspection items")
		return
	}

	c.JSON(http.StatusOK, items)
}
