package schedule

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

// Catalog reúne as leituras do catálogo usadas pelas telas do admin.
type Catalog struct {
	servicios agenda.Servicios
	horarios  agenda.Horarios
	fechas    agenda.FechasDisponibles
}

func NewCatalog(
	servicios agenda.Servicios,
	horarios agenda.Horarios,
	fechas agenda.FechasDisponibles,
) *Catalog {
	return &Catalog{
		servicios: servicios,
		horarios:  horarios,
		fechas:    fechas,
	}
}

func (uc *Catalog) Services(ctx context.Context) ([]models.Servicio, error) {
	return uc.servicios.ListServicios(ctx)
}

func (uc *Catalog) Hours(ctx context.Context) ([]models.HorarioAtencion, error) {
	return uc.horarios.ListHorarios(ctx)
}

func (uc *Catalog) AvailableDates(ctx context.Context) ([]models.FechaDisponible, error) {
	return uc.fechas.ListFechasDisponibles(ctx)
}
