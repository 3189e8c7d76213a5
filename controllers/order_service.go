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

// AddOrderServiceInput defines the expected JSON structure for one line
// of work on a service order
type AddOrderServiceInput struct {
	Description   string  `json:"description" binding:"required"`
	EstimatedCost float64 `json:"estimatedCost" binding:"min=0"`
}

// AddOrderService attaches a service line to an order and re-derives the
// order's total estimate from the sum of its lines, in one transaction.
func AddOrderService(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input AddOrderServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.ServiceOrder
		if err := tx.First(&order, "id = ?", orderUUID).Error; err != nil {
			return err
		}

		service = models.Service{
			ServiceOrderID: order.ID,
			Description:    input.Description,
			EstimatedCost:  input.EstimatedCost,
			Status:         models.ServiceStatusPending,
		}
		if err := tx.Create(&service).Error; err != nil {
			return err
		}

		var total float64
		if err := tx.Model(&models.Service{}).
			Where("service_order_id = ?", order.ID).
			Select("COALESCE(SUM(estimated_cost), 0)").
			Scan(&total).Error; err != nil {
			return err
		}

		return tx.Model(&order).Update("total_estimate", total).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add service")
		}
		return
	}

	utils.FlushResponseCache()

	c.JSON(http.StatusCreated, service)
}

// GetOrderServices lists an order's service lines
func GetOrderServices(c *gin.Context) {
	orderUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var orderServices []models.Service
	if err := config.DB.Where("service_order_id = ?", orderUUID).
		Order("created_at ASC").
		Find(&orderServices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, orderServices)
}
