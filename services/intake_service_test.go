package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autocheck-backend/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.ServiceOrder{},
		&models.InspectionItem{},
		&models.Service{},
	))
	return db
}

func validIntake() IntakeInput {
	return IntakeInput{
		Plate:         "ABC1234",
		Brand:         "Toyota",
		Model:         "Corolla",
		Year:          2023,
		Color:         "Prata",
		CustomerName:  "João",
		CustomerPhone: "11999999999",
	}
}

func TestLookupByPlate_ShortPlateSkipsDatabase(t *testing.T) {
	// A nil handle proves the validation path never reaches the database.
	svc := NewIntakeService(nil)

	_, err := svc.LookupByPlate("AB123")
	assert.ErrorIs(t, err, ErrInvalidPlate)

	_, err = svc.LookupByPlate("")
	assert.ErrorIs(t, err, ErrInvalidPlate)
}

func TestLookupByPlate(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)

	require.NoError(t, db.Create(&models.Vehicle{
		Plate: "ABC-1234", Brand: "Toyota", Model: "Corolla", Year: 2023,
		Color: "Prata", CustomerName: "João", CustomerPhone: "11999999999",
	}).Error)

	t.Run("found by any plate spelling", func(t *testing.T) {
		for _, plate := range []string{"ABC1234", "abc-1234", " abc 1234 "} {
			vehicle, err := svc.LookupByPlate(plate)
			require.NoError(t, err, "plate %q", plate)
			assert.Equal(t, "ABC-1234", vehicle.Plate)
			assert.Equal(t, "Toyota", vehicle.Brand)
			assert.Equal(t, "João", vehicle.CustomerName)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.LookupByPlate("XYZ9876")
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)

	order, created, err := svc.CreateOrder(validIntake())
	require.NoError(t, err)
	assert.True(t, created)

	// New orders always start pending with a zero estimate.
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, float64(0), order.TotalEstimate)
	assert.Equal(t, models.PriorityMedium, order.Priority)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "OS-"))

	// Exactly one vehicle stored under the canonical plate form.
	var vehicles []models.Vehicle
	require.NoError(t, db.Find(&vehicles).Error)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "ABC-1234", vehicles[0].Plate)
	assert.Equal(t, vehicles[0].ID, order.VehicleID)
}

func TestCreateOrder_ShortPlate(t *testing.T) {
	svc := NewIntakeService(nil)

	_, _, err := svc.CreateOrder(IntakeInput{Plate: "AB123"})
	assert.ErrorIs(t, err, ErrInvalidPlate)
}

func TestCreateOrder_UpsertsExistingPlate(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)

	first, _, err := svc.CreateOrder(validIntake())
	require.NoError(t, err)

	second := validIntake()
	second.Brand = "Honda"
	second.Model = "Civic"
	second.CustomerName = "Maria"
	reorder, _, err := svc.CreateOrder(second)
	require.NoError(t, err)

	// Still one vehicle, now carrying the latest submitted values.
	var vehicles []models.Vehicle
	require.NoError(t, db.Find(&vehicles).Error)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Honda", vehicles[0].Brand)
	assert.Equal(t, "Civic", vehicles[0].Model)
	assert.Equal(t, "Maria", vehicles[0].CustomerName)

	// Both orders reference the same vehicle row.
	assert.Equal(t, first.VehicleID, reorder.VehicleID)

	var orderCount int64
	require.NoError(t, db.Model(&models.ServiceOrder{}).Count(&orderCount).Error)
	assert.EqualValues(t, 2, orderCount)
}

func TestCreateOrder_IdempotentRequestToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)

	input := validIntake()
	input.RequestToken = "form-7c1a"

	first, created, err := svc.CreateOrder(input)
	require.NoError(t, err)
	assert.True(t, created)

	replay, created, err := svc.CreateOrder(input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, replay.ID)

	var orderCount int64
	require.NoError(t, db.Model(&models.ServiceOrder{}).Count(&orderCount).Error)
	assert.EqualValues(t, 1, orderCount)
}

func TestCreateOrder_FailedInsertLeavesNoVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)

	// Break the order insert so the transaction has to roll back.
	require.NoError(t, db.Migrator().DropTable(&models.ServiceOrder{}))

	_, _, err := svc.CreateOrder(validIntake())
	require.Error(t, err)

	var vehicleCount int64
	require.NoError(t, db.Model(&models.Vehicle{}).Count(&vehicleCount).Error)
	assert.EqualValues(t, 0, vehicleCount, "vehicle upsert must roll back with the order insert")
}
