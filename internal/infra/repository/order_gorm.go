package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// --------------------------------------------------
// Equipment
// --------------------------------------------------

func (r *OrderGormRepository) GetEquipmentByID(
	ctx context.Context,
	id uint,
) (*models.Equipment, error) {

	var eq models.Equipment
	if err := r.db.WithContext(ctx).First(&eq, id).Error; err != nil {
		return nil, err
	}
	return &eq, nil
}

// --------------------------------------------------
// Order
// --------------------------------------------------

func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) GetOrderByID(
	ctx context.Context,
	id uint,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *OrderGormRepository) DeleteOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Delete(o).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Order, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Joins("JOIN equipment ON equipment.id = orders.equipment_id").
		Preload("Equipment")

	if filter.EquipmentQuery != "" {
		like := "%" + strings.ToLower(filter.EquipmentQuery) + "%"
		q = q.Where("LOWER(equipment.name) LIKE ?", like)
	}

	if filter.Status != "" {
		q = q.Where("orders.status = ?", filter.Status)
	}

	var orders []models.Order
	if err := q.
		Order("orders.created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrderGormRepository) CountOrdersByStatus(
	ctx context.Context,
) (domain.StatusCounts, error) {

	type row struct {
		Status string
		N      int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return domain.StatusCounts{}, err
	}

	var counts domain.StatusCounts
	for _, rw := range rows {
		switch domain.Status(rw.Status) {
		case domain.StatusPending:
			counts.Pending = rw.N
		case domain.StatusInProgress:
			counts.InProgress = rw.N
		case domain.StatusFinished:
			counts.Finished = rw.N
		}
	}

	return counts, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
