// controllers/order.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"autocheck-backend/config"
	"autocheck-backend/models"
	"autocheck-backend/services"
	"autocheck-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceOrderInput defines the expected JSON structure for the
// intake form: vehicle, customer contact and order metadata in one shot.
type CreateServiceOrderInput struct {
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year" binding:"required,gte=1900,lte=2100"`
	Color string `json:"color" binding:"required"`

	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email"`

	Priority string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Notes    string `json:"notes"`

	// Optional client-generated token; replaying it returns the order
	// created by the first attempt instead of opening a second one.
	RequestToken string `json:"requestToken"`
}

// UpdateServiceOrderStatusInput is the closed-enum status change payload.
// Unknown status values are rejected at the boundary, not stored.
type UpdateServiceOrderStatusInput struct {
	Status              string     `json:"status" binding:"required,oneof=pending in_progress waiting_approval approved completed cancelled"`
	MechanicID          *uuid.UUID `json:"mechanicId"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
}

// CreateServiceOrder runs the intake workflow: upsert the vehicle keyed
// on its plate, then open a pending order for it, atomically.
func CreateServiceOrder(c *gin.Context) {
	var input CreateServiceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	order, created, err := services.NewIntakeService(config.DB).CreateOrder(services.IntakeInput{
		Plate:         input.Plate,
		Brand:         input.Brand,
		Model:         input.Model,
		Year:          input.Year,
		Color:         input.Color,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Priority:      input.Priority,
		Notes:         input.Notes,
		RequestToken:  input.RequestToken,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Enter a valid plate")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service order")
		return
	}

	utils.FlushResponseCache()

	if created {
		c.JSON(http.StatusCreated, order)
	} else {
		c.JSON(http.StatusOK, order)
	}
}

// GetServiceOrders lists the most recent orders with their vehicles.
func GetServiceOrders(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 10
	}

	var orders []models.ServiceOrder
	if err := config.DB.Preload("Vehicle").
		Order("entry_date DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetServiceOrder retrieves one order with its vehicle, checklist and
// service lines.
func GetServiceOrder(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.ServiceOrder
	if err := config.DB.Preload("Vehicle").
		Preload("InspectionItems").
		Preload("Services").
		First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateServiceOrderStatus applies a status change. Completion stamps the
// completion date and notifies the customer their vehicle is ready.
func UpdateServiceOrderStatus(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateServiceOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var order models.ServiceOrder
	if err := config.DB.Preload("Vehicle").First(&order, "id = ?", orderUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	order.Status = input.Status
	if input.MechanicID != nil {
		order.MechanicID = input.MechanicID
	}
	if input.EstimatedCompletion != nil {
		order.EstimatedCompletion = input.EstimatedCompletion
	}
	if input.Status == models.OrderStatusCompleted && order.CompletionDate == nil {
		now := time.Now()
		order.CompletionDate = &now
	}

	if err := config.DB.Save(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service order")
		return
	}

	utils.FlushResponseCache()

	if input.Status == models.OrderStatusCompleted {
		services.NewNotificationService().NotifyOrderCompleted(&order, &order.Vehicle)
	}

	c.JSON(http.StatusOK, order)
}
