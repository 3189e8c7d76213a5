package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServiceStatusPending    = "pending"
	ServiceStatusApproved   = "approved"
	ServiceStatusInProgress = "in_progress"
	ServiceStatusCompleted  = "completed"
)

// Service is one line of work inside a service order. The order's
// total estimate is derived from the sum of its services' estimated costs.
type Service struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceOrderID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceOrderId"`
	Description    string    `gorm:"not null" json:"description"`
	EstimatedCost  float64   `gorm:"type:decimal(10,2);not null" json:"estimatedCost"`
	ActualCost     *float64  `gorm:"type:decimal(10,2)" json:"actualCost"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
