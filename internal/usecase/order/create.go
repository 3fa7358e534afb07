package order

import (
	"context"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/httperr"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateOrderInput struct {
	EquipmentID uint
	Technician  string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo domain.Repository
}

func NewCreateOrder(repo domain.Repository) *CreateOrder {
	return &CreateOrder{repo: repo}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	// The equipment reference must point to an existing row.
	eq, err := uc.repo.GetEquipmentByID(ctx, in.EquipmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("equipment_not_found")
	}

	o := &models.Order{
		EquipmentID: eq.ID,
		Technician:  in.Technician,
		Description: in.Description,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}
