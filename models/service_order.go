package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending         = "pending"
	OrderStatusInProgress      = "in_progress"
	OrderStatusWaitingApproval = "waiting_approval"
	OrderStatusApproved        = "approved"
	OrderStatusCompleted       = "completed"
	OrderStatusCancelled       = "cancelled"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type ServiceOrder struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber string     `gorm:"uniqueIndex;not null" json:"orderNumber"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"vehicleId"`
	MechanicID  *uuid.UUID `gorm:"type:uuid;index" json:"mechanicId"`

	Status   string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority string `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`

	EntryDate           time.Time  `gorm:"index;not null" json:"entryDate"`
	EstimatedCompletion *time.Time `json:"estimatedCompletion"`
	CompletionDate      *time.Time `json:"completionDate"`

	TotalEstimate float64 `gorm:"type:decimal(10,2);default:0.0" json:"totalEstimate"`
	Notes         string  `gorm:"type:text" json:"notes"`

	// Client-generated token that makes intake retries idempotent.
	RequestToken *string `gorm:"uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"createdAt"`

	Vehicle         Vehicle          `gorm:"foreignKey:VehicleID" json:"vehicle"`
	InspectionItems []InspectionItem `gorm:"foreignKey:ServiceOrderID" json:"inspectionItems,omitempty"`
	Services        []Service        `gorm:"foreignKey:ServiceOrderID" json:"services,omitempty"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

// statusLabels maps stored status values to display labels. Values read
// from storage that are not in the map fall back to the raw value.
var statusLabels = map[string]string{
	OrderStatusPending:         "Pendente",
	OrderStatusInProgress:      "Em Andamento",
	OrderStatusWaitingApproval: "Aguardando Aprovação",
	OrderStatusApproved:        "Aprovado",
	OrderStatusCompleted:       "Concluído",
	OrderStatusCancelled:       "Cancelado",
}

var priorityColors = map[string]string{
	PriorityLow:    "green",
	PriorityMedium: "yellow",
	PriorityHigh:   "orange",
	PriorityUrgent: "red",
}

// StatusLabel returns the display label for a status, falling back to the
// raw value for anything unrecognized.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// PriorityColor returns the display color for a priority, falling back to
// a neutral color for anything unrecognized.
func PriorityColor(priority string) string {
	if color, ok := priorityColors[priority]; ok {
		return color
	}
	return "slate"
}
