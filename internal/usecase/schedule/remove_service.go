package schedule

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
)

type RemoveService struct {
	servicios agenda.Servicios
	audit     *audit.Dispatcher
}

func NewRemoveService(
	servicios agenda.Servicios,
	audit *audit.Dispatcher,
) *RemoveService {
	return &RemoveService{
		servicios: servicios,
		audit:     audit,
	}
}

func (uc *RemoveService) Execute(
	ctx context.Context,
	servicioID uint,
) error {

	servicio, err := uc.servicios.GetServicio(ctx, servicioID)
	if err != nil {
		return err
	}
	if servicio == nil {
		return httperr.ErrBusiness("servicio_no_encontrado")
	}

	if err := uc.servicios.DeleteServicio(ctx, servicioID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "servicio_removed",
		Entity:   "servicio",
		EntityID: &servicioID,
		Metadata: map[string]string{"nombre": servicio.Nombre},
	})

	return nil
}
