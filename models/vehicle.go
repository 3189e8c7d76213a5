package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is identified by its license plate; intake upserts on the plate,
// so there is never more than one row per plate. Customer contact data is
// embedded rather than a separate table, mirroring the intake form.
type Vehicle struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Plate string    `gorm:"type:varchar(8);uniqueIndex;not null" json:"plate"`
	Brand string    `gorm:"not null" json:"brand"`
	Model string    `gorm:"not null" json:"model"`
	Year  int       `gorm:"not null" json:"year"`
	Color string    `gorm:"not null" json:"color"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ServiceOrders []ServiceOrder `gorm:"foreignKey:VehicleID" json:"-"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
