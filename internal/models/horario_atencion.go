package models

import "time"

// HorarioAtencion guarda o expediente de um dia da semana.
// No máximo uma linha por dia; o update é feito in place.
type HorarioAtencion struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Dia      string `gorm:"size:20;uniqueIndex;not null" json:"dia"`
	Apertura string `gorm:"size:5;not null" json:"apertura"`
	Cierre   string `gorm:"size:5;not null" json:"cierre"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
