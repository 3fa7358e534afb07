package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Equipment{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func seedEquipment(t *testing.T, db *gorm.DB, name string) models.Equipment {
	eq := models.Equipment{Name: name}
	require.NoError(t, db.Create(&eq).Error)
	return eq
}

func seedOrder(t *testing.T, db *gorm.DB, eq models.Equipment, status string, createdAt time.Time) models.Order {
	o := models.Order{
		EquipmentID: eq.ID,
		Technician:  "tech",
		Description: "desc",
		Status:      status,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	eq := seedEquipment(t, db, "Ventilator-A")
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	first := seedOrder(t, db, eq, "Pending", base)
	second := seedOrder(t, db, eq, "Pending", base.Add(time.Minute))
	third := seedOrder(t, db, eq, "Pending", base.Add(2*time.Minute))

	orders, err := repo.ListOrders(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, third.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.Equal(t, first.ID, orders[2].ID)

	// Preload brings the owning equipment along.
	assert.Equal(t, "Ventilator-A", orders[0].Equipment.Name)
}

func TestListOrdersEquipmentFilterIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	vent := seedEquipment(t, db, "Ventilator-A")
	comp := seedEquipment(t, db, "Compressor")
	now := time.Now()

	seedOrder(t, db, vent, "Pending", now)
	seedOrder(t, db, comp, "Pending", now.Add(time.Second))

	orders, err := repo.ListOrders(ctx, domain.ListFilter{EquipmentQuery: "VENTIL"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, vent.ID, orders[0].EquipmentID)
}

func TestListOrdersFiltersAreANDCombined(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	vent := seedEquipment(t, db, "Ventilator-A")
	comp := seedEquipment(t, db, "Compressor")
	now := time.Now()

	match := seedOrder(t, db, vent, "Finished", now)
	seedOrder(t, db, vent, "Pending", now.Add(time.Second))
	seedOrder(t, db, comp, "Finished", now.Add(2*time.Second))

	orders, err := repo.ListOrders(ctx, domain.ListFilter{
		EquipmentQuery: "ventilator",
		Status:         "Finished",
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, match.ID, orders[0].ID)
}

func TestCountOrdersByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	eq := seedEquipment(t, db, "Ventilator-A")
	now := time.Now()

	seedOrder(t, db, eq, "Pending", now)
	seedOrder(t, db, eq, "Pending", now)
	seedOrder(t, db, eq, "In-progress", now)

	counts, err := repo.CountOrdersByStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.Pending)
	assert.Equal(t, int64(1), counts.InProgress)
	assert.Equal(t, int64(0), counts.Finished)
}

func TestGetUpdateDeleteOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	eq := seedEquipment(t, db, "Ventilator-A")
	o := seedOrder(t, db, eq, "Pending", time.Now())

	got, err := repo.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	got.Status = "In-progress"
	require.NoError(t, repo.UpdateOrder(ctx, got))

	reloaded, err := repo.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "In-progress", reloaded.Status)

	require.NoError(t, repo.DeleteOrder(ctx, reloaded))

	_, err = repo.GetOrderByID(ctx, o.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetEquipmentByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderGormRepository(db)
	ctx := context.Background()

	eq := seedEquipment(t, db, "Ventilator-A")

	got, err := repo.GetEquipmentByID(ctx, eq.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ventilator-A", got.Name)

	_, err = repo.GetEquipmentByID(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
