package models

import "time"

// FechaDisponible materializa as datas da janela de 90 dias cujo dia da
// semana tem expediente configurado. Alimenta o feed do calendário.
type FechaDisponible struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Fecha string `gorm:"size:10;uniqueIndex;not null" json:"fecha"`
	Dia   string `gorm:"size:20;not null" json:"dia"`

	CreatedAt time.Time `json:"created_at"`
}
