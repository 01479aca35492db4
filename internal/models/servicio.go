package models

import "time"

type Servicio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre      string `gorm:"size:100;uniqueIndex;not null" json:"nombre"`
	DuracionMin int    `gorm:"not null" json:"duracion_min"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
