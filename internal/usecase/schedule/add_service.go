package schedule

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

type AddService struct {
	servicios agenda.Servicios
	audit     *audit.Dispatcher
}

func NewAddService(
	servicios agenda.Servicios,
	audit *audit.Dispatcher,
) *AddService {
	return &AddService{
		servicios: servicios,
		audit:     audit,
	}
}

// Execute insere um serviço novo. Nome repetido é rejeitado com
// servicio_duplicado e o catálogo fica como estava; o índice único em
// nombre cobre a corrida entre o check e o insert.
func (uc *AddService) Execute(
	ctx context.Context,
	nombre string,
	duracionMin int,
) (*models.Servicio, error) {

	if nombre == "" || duracionMin <= 0 {
		return nil, httperr.ErrBusiness("servicio_invalido")
	}

	existing, err := uc.servicios.FindServicioByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("servicio_duplicado")
	}

	servicio := &models.Servicio{
		Nombre:      nombre,
		DuracionMin: duracionMin,
	}

	if err := uc.servicios.CreateServicio(ctx, servicio); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "servicio_added",
		Entity:   "servicio",
		EntityID: &servicio.ID,
		Metadata: map[string]any{"nombre": nombre, "duracion_min": duracionMin},
	})

	return servicio, nil
}
