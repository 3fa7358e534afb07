package order

import (
	"context"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/httperr"
)

type DeleteOrder struct {
	repo domain.Repository
}

func NewDeleteOrder(repo domain.Repository) *DeleteOrder {
	return &DeleteOrder{repo: repo}
}

func (uc *DeleteOrder) Execute(
	ctx context.Context,
	orderID uint,
) error {

	o, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return httperr.ErrBusiness("order_not_found")
	}

	return uc.repo.DeleteOrder(ctx, o)
}
