package schedule

import (
	"context"
	"time"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

// Janela de antecedência para a qual materializamos FechaDisponible.
const LookaheadDays = 90

type UpsertHours struct {
	horarios agenda.Horarios
	fechas   agenda.FechasDisponibles
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewUpsertHours(
	horarios agenda.Horarios,
	fechas agenda.FechasDisponibles,
	audit *audit.Dispatcher,
) *UpsertHours {
	return &UpsertHours{
		horarios: horarios,
		fechas:   fechas,
		audit:    audit,
		now:      time.Now,
	}
}

// Execute atualiza o expediente de um dia da semana (uma linha por dia,
// update in place) e materializa as datas da janela de 90 dias que caem
// nesse dia.
func (uc *UpsertHours) Execute(
	ctx context.Context,
	dia string,
	apertura string,
	cierre string,
) (*models.HorarioAtencion, error) {

	if !agenda.IsWeekdayName(dia) {
		return nil, httperr.ErrBusiness("dia_invalido")
	}
	if _, err := time.Parse("15:04", apertura); err != nil {
		return nil, httperr.ErrBusiness("horario_invalido")
	}
	if _, err := time.Parse("15:04", cierre); err != nil {
		return nil, httperr.ErrBusiness("horario_invalido")
	}

	horario, err := uc.horarios.GetHorarioForDia(ctx, dia)
	if err != nil {
		return nil, err
	}
	if horario == nil {
		horario = &models.HorarioAtencion{Dia: dia}
	}

	horario.Apertura = apertura
	horario.Cierre = cierre

	if err := uc.horarios.SaveHorario(ctx, horario); err != nil {
		return nil, err
	}

	if err := uc.materialize(ctx, dia); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "horario_updated",
		Entity:   "horario_atencion",
		EntityID: &horario.ID,
		Metadata: map[string]string{"dia": dia, "apertura": apertura, "cierre": cierre},
	})

	return horario, nil
}

func (uc *UpsertHours) materialize(ctx context.Context, dia string) error {
	today := uc.now()

	for i := 0; i < LookaheadDays; i++ {
		date := today.AddDate(0, 0, i)
		if agenda.WeekdayName(date) != dia {
			continue
		}

		fecha := &models.FechaDisponible{
			Fecha: date.Format(agenda.DateLayout),
			Dia:   dia,
		}
		if err := uc.fechas.UpsertFechaDisponible(ctx, fecha); err != nil {
			return err
		}
	}
	return nil
}
