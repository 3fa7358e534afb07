package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerServices01/maintenance-tracker/internal/models"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	"github.com/TallerServices01/maintenance-tracker/internal/storage"
)

const (
	msgEquipmentNameRequired = "El nombre del equipo es obligatorio"
	msgEquipmentNotFound     = "Equipo no encontrado"
	msgEquipmentHasOrders    = "El equipo tiene órdenes asociadas y no puede eliminarse"
	msgEquipmentCreated      = "Equipo registrado"
	msgEquipmentDeleted      = "Equipo eliminado"
	msgPhotoFailed           = "No se pudo procesar la foto del equipo"
)

type EquipmentHandler struct {
	db    *gorm.DB
	store session.Store

	// nil when photo storage is not configured.
	uploader storage.Uploader
}

func NewEquipmentHandler(db *gorm.DB, store session.Store, uploader storage.Uploader) *EquipmentHandler {
	return &EquipmentHandler{db: db, store: store, uploader: uploader}
}

// --------- Views ---------

type equipmentRow struct {
	models.Equipment
	OrderCount int64
}

func (h *EquipmentHandler) List(c *gin.Context) {
	var equipment []models.Equipment
	if err := h.db.Order("id ASC").Find(&equipment).Error; err != nil {
		serverError(c)
		return
	}

	type countRow struct {
		EquipmentID uint
		N           int64
	}
	var counts []countRow
	if err := h.db.Model(&models.Order{}).
		Select("equipment_id, COUNT(*) AS n").
		Group("equipment_id").
		Scan(&counts).Error; err != nil {
		serverError(c)
		return
	}

	byID := make(map[uint]int64, len(counts))
	for _, row := range counts {
		byID[row.EquipmentID] = row.N
	}

	rows := make([]equipmentRow, 0, len(equipment))
	for _, eq := range equipment {
		rows = append(rows, equipmentRow{Equipment: eq, OrderCount: byID[eq.ID]})
	}

	render(c, h.store, "equipos", gin.H{
		"Equipment": rows,
	})
}

func (h *EquipmentHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flashAndRedirect(c, h.store, msgEquipmentNotFound, "/equipos")
		return
	}

	var eq models.Equipment
	if err := h.db.First(&eq, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			flashAndRedirect(c, h.store, msgEquipmentNotFound, "/equipos")
			return
		}
		serverError(c)
		return
	}

	var orders []models.Order
	if err := h.db.
		Where("equipment_id = ?", eq.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		serverError(c)
		return
	}

	photoURL := ""
	if eq.PhotoKey != "" && h.uploader != nil {
		if url, err := h.uploader.PresignURL(c.Request.Context(), eq.PhotoKey); err == nil {
			photoURL = url
		}
	}

	render(c, h.store, "equipo", gin.H{
		"Equipment": eq,
		"Orders":    orders,
		"PhotoURL":  photoURL,
	})
}

// --------- Create ---------

func (h *EquipmentHandler) Create(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("nombre"))
	if name == "" {
		flashAndRedirect(c, h.store, msgEquipmentNameRequired, "/equipos")
		return
	}

	eq := models.Equipment{
		Name:     name,
		Brand:    strings.TrimSpace(c.PostForm("marca")),
		Model:    strings.TrimSpace(c.PostForm("modelo")),
		Serial:   strings.TrimSpace(c.PostForm("serial")),
		Location: strings.TrimSpace(c.PostForm("ubicacion")),
	}

	if key, ok := h.uploadPhoto(c); ok {
		eq.PhotoKey = key
	}

	if err := h.db.Create(&eq).Error; err != nil {
		serverError(c)
		return
	}

	flashAndRedirect(c, h.store, msgEquipmentCreated, "/equipos")
}

// uploadPhoto converts an optional "foto" form file to webp and stores it.
// A processing failure only costs the photo, never the equipment row.
func (h *EquipmentHandler) uploadPhoto(c *gin.Context) (string, bool) {
	if h.uploader == nil {
		return "", false
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = h.store.PushFlash(c.Request.Context(), mustSID(c), msgPhotoFailed)
		return "", false
	}
	defer file.Close()

	data, err := storage.ToWebP(file)
	if err != nil {
		_ = h.store.PushFlash(c.Request.Context(), mustSID(c), msgPhotoFailed)
		return "", false
	}

	key := storage.NewPhotoKey()
	if err := h.uploader.Upload(c.Request.Context(), key, data, "image/webp"); err != nil {
		_ = h.store.PushFlash(c.Request.Context(), mustSID(c), msgPhotoFailed)
		return "", false
	}

	return key, true
}

// --------- Delete ---------

func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		flashAndRedirect(c, h.store, msgEquipmentNotFound, "/equipos")
		return
	}

	var eq models.Equipment
	if err := h.db.First(&eq, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			flashAndRedirect(c, h.store, msgEquipmentNotFound, "/equipos")
			return
		}
		serverError(c)
		return
	}

	// Explicit count query instead of walking the relation.
	var orderCount int64
	if err := h.db.Model(&models.Order{}).
		Where("equipment_id = ?", eq.ID).
		Count(&orderCount).Error; err != nil {
		serverError(c)
		return
	}
	if orderCount > 0 {
		flashAndRedirect(c, h.store, msgEquipmentHasOrders, "/equipos")
		return
	}

	if err := h.db.Delete(&eq).Error; err != nil {
		serverError(c)
		return
	}

	if eq.PhotoKey != "" && h.uploader != nil {
		// Best effort: an orphaned object is not worth failing the request.
		_ = h.uploader.Delete(c.Request.Context(), eq.PhotoKey)
	}

	flashAndRedirect(c, h.store, msgEquipmentDeleted, "/equipos")
}
