package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/TallerServices01/maintenance-tracker/internal/domain/order"
	"github.com/TallerServices01/maintenance-tracker/internal/httperr"
	"github.com/TallerServices01/maintenance-tracker/internal/middleware"
	"github.com/TallerServices01/maintenance-tracker/internal/models"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	ucorder "github.com/TallerServices01/maintenance-tracker/internal/usecase/order"
)

const (
	msgOrderFieldsRequired = "Equipo y descripción son obligatorios"
	msgEquipmentMissing    = "El equipo indicado no existe"
	msgOrderNotFound       = "Orden no encontrada"
	msgOrderCreated        = "Orden creada"
	msgOrderDeleted        = "Orden eliminada"
)

type OrderHandler struct {
	db    *gorm.DB
	store session.Store

	createUC  *ucorder.CreateOrder
	advanceUC *ucorder.AdvanceOrder
	deleteUC  *ucorder.DeleteOrder
	listUC    *ucorder.ListOrders
}

func NewOrderHandler(
	db *gorm.DB,
	store session.Store,
	createUC *ucorder.CreateOrder,
	advanceUC *ucorder.AdvanceOrder,
	deleteUC *ucorder.DeleteOrder,
	listUC *ucorder.ListOrders,
) *OrderHandler {
	return &OrderHandler{
		db:        db,
		store:     store,
		createUC:  createUC,
		advanceUC: advanceUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
	}
}

// --------- Index (listing + filters + counts) ---------

func (h *OrderHandler) Index(c *gin.Context) {
	filter := domain.ListFilter{
		EquipmentQuery: strings.TrimSpace(c.Query("q")),
		Status:         strings.TrimSpace(c.Query("estado")),
	}

	orders, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		serverError(c)
		return
	}

	counts, err := h.listUC.Counts(c.Request.Context())
	if err != nil {
		serverError(c)
		return
	}

	// Equipment options for the create form.
	var equipment []models.Equipment
	if err := h.db.Order("name ASC").Find(&equipment).Error; err != nil {
		serverError(c)
		return
	}

	render(c, h.store, "index", gin.H{
		"Orders":    orders,
		"Counts":    counts,
		"Equipment": equipment,
		"Query":     filter.EquipmentQuery,
		"Estado":    filter.Status,
		"Statuses":  domain.All(),
	})
}

// --------- Create ---------

func (h *OrderHandler) Create(c *gin.Context) {
	equipmentID, err := strconv.ParseUint(strings.TrimSpace(c.PostForm("equipo_id")), 10, 32)
	description := strings.TrimSpace(c.PostForm("descripcion"))
	technician := strings.TrimSpace(c.PostForm("tecnico"))

	if err != nil || description == "" {
		flashAndRedirect(c, h.store, msgOrderFieldsRequired, "/")
		return
	}

	if technician == "" {
		if sess, ok := middleware.CurrentSession(c); ok {
			technician = sess.DisplayName
		}
	}

	_, err = h.createUC.Execute(c.Request.Context(), ucorder.CreateOrderInput{
		EquipmentID: uint(equipmentID),
		Technician:  technician,
		Description: description,
	})
	if err != nil {
		if httperr.IsBusiness(err, "equipment_not_found") {
			flashAndRedirect(c, h.store, msgEquipmentMissing, "/")
			return
		}
		serverError(c)
		return
	}

	flashAndRedirect(c, h.store, msgOrderCreated, "/")
}

// --------- Advance status ---------

func (h *OrderHandler) Advance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flashAndRedirect(c, h.store, msgOrderNotFound, "/")
		return
	}

	if _, err := h.advanceUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			flashAndRedirect(c, h.store, msgOrderNotFound, "/")
			return
		}
		serverError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// --------- Delete ---------

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flashAndRedirect(c, h.store, msgOrderNotFound, "/")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "order_not_found") {
			flashAndRedirect(c, h.store, msgOrderNotFound, "/")
			return
		}
		serverError(c)
		return
	}

	flashAndRedirect(c, h.store, msgOrderDeleted, "/")
}
