package booking

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

type ListCitas struct {
	citas agenda.Citas
}

func NewListCitas(citas agenda.Citas) *ListCitas {
	return &ListCitas{citas: citas}
}

func (uc *ListCitas) All(ctx context.Context) ([]models.Cita, error) {
	return uc.citas.ListCitas(ctx)
}

func (uc *ListCitas) ForDay(ctx context.Context, fecha string) ([]models.Cita, error) {
	return uc.citas.ListCitasForDay(ctx, fecha)
}
