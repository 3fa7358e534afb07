package order

import (
	"context"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/httperr"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

type AdvanceOrder struct {
	repo domain.Repository
}

func NewAdvanceOrder(repo domain.Repository) *AdvanceOrder {
	return &AdvanceOrder{repo: repo}
}

func (uc *AdvanceOrder) Execute(
	ctx context.Context,
	orderID uint,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	domain.Advance(o)

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
