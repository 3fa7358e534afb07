package order

import (
	"context"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/dto"
)

type ListOrders struct {
	repo domain.Repository
}

func NewListOrders(repo domain.Repository) *ListOrders {
	return &ListOrders{repo: repo}
}

// Execute returns orders newest-first, narrowed by the optional filter.
func (uc *ListOrders) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.OrderListDTO, error) {

	orders, err := uc.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.OrderListDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderListDTO{
			ID:            o.ID,
			EquipmentID:   o.EquipmentID,
			EquipmentName: o.Equipment.Name,
			Technician:    o.Technician,
			Description:   o.Description,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}

	return out, nil
}

func (uc *ListOrders) Counts(ctx context.Context) (domain.StatusCounts, error) {
	return uc.repo.CountOrdersByStatus(ctx)
}
