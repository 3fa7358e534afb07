package models

import "time"

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EquipmentID uint      `gorm:"not null" json:"equipment_id"`
	Equipment   Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"equipment"`

	Technician  string `gorm:"size:100;not null" json:"technician"`
	Description string `gorm:"size:255;not null" json:"description"`

	Status string `gorm:"size:20;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
