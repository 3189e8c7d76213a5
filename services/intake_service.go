// services/intake_service.go
package services

import (
	"errors"
	"time"

	"autocheck-backend/models"
	"autocheck-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInvalidPlate is returned before any database access happens.
	ErrInvalidPlate = errors.New("plate too short")
	// ErrVehicleNotFound means no vehicle is stored for the plate.
	ErrVehicleNotFound = errors.New("vehicle not found")
)

// IntakeService runs the order-intake workflow: plate lookup for the
// form, then vehicle upsert plus order creation as one transaction.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

// LookupByPlate finds a vehicle by its normalized plate so the intake
// form can be pre-filled. Plates shorter than the minimum are rejected
// without touching the database. There is no external registry lookup;
// an unknown plate simply means the form is filled manually.
func (s *IntakeService) LookupByPlate(plate string) (*models.Vehicle, error) {
	normalized := utils.NormalizePlate(plate)
	if len(normalized) < utils.MinPlateLength {
		return nil, ErrInvalidPlate
	}

	var vehicle models.Vehicle
	if err := s.db.Where("plate = ?", normalized).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// IntakeInput carries everything the intake form submits.
type IntakeInput struct {
	Plate         string
	Brand         string
	Model         string
	Year          int
	Color         string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Priority      string
	Notes         string
	RequestToken  string
}

// CreateOrder upserts the vehicle keyed on its plate and opens a new
// service order for it. Both writes run in one transaction, so a failed
// order insert never leaves an orphaned vehicle update behind. New orders
// always start pending with a zero estimate.
//
// When the input carries a request token that was already used, the order
// created back then is returned instead and nothing is written, which
// makes client retries safe. The second return value reports whether a
// new order was created.
func (s *IntakeService) CreateOrder(input IntakeInput) (*models.ServiceOrder, bool, error) {
	normalized := utils.NormalizePlate(input.Plate)
	if len(normalized) < utils.MinPlateLength {
		return nil, false, ErrInvalidPlate
	}

	if input.RequestToken != "" {
		var existing models.ServiceOrder
		err := s.db.Preload("Vehicle").
			Where("request_token = ?", input.RequestToken).
			First(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	var order models.ServiceOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		vehicle := models.Vehicle{
			Plate:         normalized,
			Brand:         input.Brand,
			Model:         input.Model,
			Year:          input.Year,
			Color:         input.Color,
			CustomerName:  input.CustomerName,
			CustomerPhone: input.CustomerPhone,
			CustomerEmail: input.CustomerEmail,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "plate"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"brand", "model", "year", "color",
				"customer_name", "customer_phone", "customer_email", "updated_at",
			}),
		}).Create(&vehicle).Error; err != nil {
			return err
		}

		// On conflict the struct keeps the freshly generated id, not the
		// stored one; re-read by plate so the order references the real row.
		var stored models.Vehicle
		if err := tx.Where("plate = ?", normalized).First(&stored).Error; err != nil {
			return err
		}

		order = models.ServiceOrder{
			OrderNumber:   "OS-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6),
			VehicleID:     stored.ID,
			Status:        models.OrderStatusPending,
			Priority:      priority,
			EntryDate:     time.Now(),
			TotalEstimate: 0,
			Notes:         input.Notes,
		}
		if input.RequestToken != "" {
			token := input.RequestToken
			order.RequestToken = &token
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		order.Vehicle = stored
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &order, true, nil
}
