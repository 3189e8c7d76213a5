package controllers

import (
	"net/http"
	"time"

	"autocheck-backend/config"
	"autocheck-backend/models"
	"autocheck-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recentOrdersLimit is the page the dashboard works with. The counters
// below are computed over this page only, not the whole table.
const recentOrdersLimit = 10

type DashboardOrder struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Plate         string    `json:"plate"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`

	Priority      string `json:"priority"`
	PriorityColor string `json:"priorityColor"`

	EntryDate  time.Time `json:"entryDate"`
	EntryLabel string    `json:"entryLabel"` // "Today", "Yesterday", "N days ago"

	TotalEstimate      float64 `json:"totalEstimate"`
	TotalEstimateLabel string  `json:"totalEstimateLabel"`
}

type DashboardStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// GetDashboardOverview returns the ten most recent orders joined with
// their vehicle data, plus status counters derived from that page.
func GetDashboardOverview(c *gin.Context) {
	var orders []models.ServiceOrder
	if err := config.DB.Preload("Vehicle").
		Order("entry_date DESC").
		Limit(recentOrdersLimit).
		Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	var stats DashboardStats
	rows := make([]DashboardOrder, 0, len(orders))
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusInProgress:
			stats.InProgress++
		case models.OrderStatusCompleted:
			stats.Completed++
		}
		stats.Total++

		rows = append(rows, DashboardOrder{
			ID:                 order.ID,
			OrderNumber:        order.OrderNumber,
			Plate:              order.Vehicle.Plate,
			Brand:              order.Vehicle.Brand,
			Model:              order.Vehicle.Model,
			CustomerName:       order.Vehicle.CustomerName,
			CustomerPhone:      utils.FormatPhone(order.Vehicle.CustomerPhone),
			Status:             order.Status,
			StatusLabel:        models.StatusLabel(order.Status),
			Priority:           order.Priority,
			PriorityColor:      models.PriorityColor(order.Priority),
			EntryDate:          order.EntryDate,
			EntryLabel:         utils.RelativeDay(order.EntryDate),
			TotalEstimate:      order.TotalEstimate,
			TotalEstimateLabel: utils.FormatCurrency(order.TotalEstimate),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":  stats,
		"orders": rows,
	})
}
