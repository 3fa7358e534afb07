package order

import (
	"github.com/TallerServices01/maintenance-tracker/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Advance moves the order to the next status in the cycle. The transition is
// total: it never fails on account of the current status.
func Advance(o *models.Order) {
	o.Status = string(Next(Status(o.Status)))
}
