package booking

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
)

type CancelCita struct {
	citas agenda.Citas
	audit *audit.Dispatcher
}

func NewCancelCita(
	citas agenda.Citas,
	audit *audit.Dispatcher,
) *CancelCita {
	return &CancelCita{
		citas: citas,
		audit: audit,
	}
}

// Execute apaga a cita. O Cliente fica: cancelar nunca cascateia.
func (uc *CancelCita) Execute(
	ctx context.Context,
	citaID uint,
) error {

	cita, err := uc.citas.GetCita(ctx, citaID)
	if err != nil {
		return err
	}
	if cita == nil {
		return httperr.ErrBusiness("cita_no_encontrada")
	}

	if err := uc.citas.DeleteCita(ctx, citaID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_cancelled",
		Entity:   "cita",
		EntityID: &citaID,
	})

	return nil
}
