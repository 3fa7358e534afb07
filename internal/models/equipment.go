package models

import "time"

type Equipment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Brand    string `gorm:"size:100" json:"brand"`
	Model    string `gorm:"size:100" json:"model"`
	Serial   string `gorm:"size:100" json:"serial"`
	Location string `gorm:"size:100" json:"location"`

	// S3 object key of the catalog photo, empty when none was uploaded.
	PhotoKey string `gorm:"size:255" json:"photo_key"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
