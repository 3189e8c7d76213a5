package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InspectionStatusOK        = "ok"
	InspectionStatusAttention = "attention"
	InspectionStatusCritical  = "critical"
)

type InspectionItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceOrderID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceOrderId"`
	Category       string    `gorm:"not null" json:"category"`
	ItemName       string    `gorm:"not null" json:"itemName"`
	Status         string    `gorm:"type:varchar(10);not null" json:"status"` // 'ok', 'attention' or 'critical'
	Notes          string    `gorm:"type:text" json:"notes"`
	PhotoURL       string    `json:"photoUrl"`
	VideoURL       string    `json:"videoUrl"`

	CreatedAt time.Time `json:"createdAt"`
}

func (i *InspectionItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
