package dto

import "time"

type OrderListDTO struct {
	ID            uint      `json:"id"`
	EquipmentID   uint      `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name"`
	Technician    string    `json:"technician"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
