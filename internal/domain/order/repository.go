package order

import (
	"context"

	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

// ListFilter narrows the order listing. Zero values mean "no filter";
// both predicates are AND-combined when present.
type ListFilter struct {
	// Case-insensitive substring match on the owning equipment's name.
	EquipmentQuery string
	// Exact status match.
	Status string
}

type StatusCounts struct {
	Pending    int64
	InProgress int64
	Finished   int64
}

type Repository interface {
	// -------- Equipment --------
	GetEquipmentByID(
		ctx context.Context,
		id uint,
	) (*models.Equipment, error)

	// -------- Order (create) --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Order (state change / delete) --------
	GetOrderByID(
		ctx context.Context,
		id uint,
	) (*models.Order, error)

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	DeleteOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// -------- Listing --------
	ListOrders(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Order, error)

	CountOrdersByStatus(
		ctx context.Context,
	) (StatusCounts, error)
}
