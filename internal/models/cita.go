package models

import "time"

// Fecha e Hora são texto simples ("2006-01-02" / "15:04"), sem timezone.
// Não há unicidade em fecha+hora: duas citas no mesmo horário são possíveis.
type Cita struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClienteID uint    `gorm:"not null" json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	Servicio string `gorm:"size:100;not null" json:"servicio"`
	Fecha    string `gorm:"size:10;not null" json:"fecha"`
	Hora     string `gorm:"size:5;not null" json:"hora"`
	Lugar    string `gorm:"size:100" json:"lugar"`

	CreatedAt time.Time `json:"created_at"`
}
