package controllers

import (
	"errors"
	"net/http"

	"autocheck-backend/config"
	"autocheck-backend/models"
	"autocheck-backend/services"
	"autocheck-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LookupVehicle finds a stored vehicle by plate so the intake form can be
// pre-filled. Short plates are rejected before any database access; an
// unknown plate is a 404 and the caller fills the form manually.
func LookupVehicle(c *gin.Context) {
	plate := c.Query("plate")

	vehicle, err := services.NewIntakeService(config.DB).LookupByPlate(plate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlate):
			utils.RespondWithError(c, http.StatusBadRequest, "Enter a valid plate")
		case errors.Is(err, services.ErrVehicleNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found, fill in the details manually")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to look up plate")
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// GetVehicles lists stored vehicles, newest first.
func GetVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := config.DB.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle retrieves a specific vehicle by ID
func GetVehicle(c *gin.Context) {
	vehicleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, "id = ?", vehicleUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
