package models

import "time"

// Cliente é o perfil do cliente, identificado pelo email.
// Criado na primeira reserva; nunca é apagado.
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre     string `gorm:"size:100;not null" json:"nombre"`
	Email      string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Telefono   string `gorm:"size:20" json:"telefono"`
	Direccion  string `gorm:"size:255" json:"direccion"`
	Cumpleanos string `gorm:"size:10" json:"cumpleanos"`
	Lugar      string `gorm:"size:100" json:"lugar"`
	Pago       string `gorm:"size:50" json:"pago"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
