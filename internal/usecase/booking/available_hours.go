package booking

import (
	"context"
	"time"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
)

type AvailableHours struct {
	servicios agenda.Servicios
	horarios  agenda.Horarios
	citas     agenda.Citas
}

func NewAvailableHours(
	servicios agenda.Servicios,
	horarios agenda.Horarios,
	citas agenda.Citas,
) *AvailableHours {
	return &AvailableHours{
		servicios: servicios,
		horarios:  horarios,
		citas:     citas,
	}
}

// Execute devolve os horários livres de uma data para um serviço:
// candidatos de 15 em 15 minutos dentro do expediente do dia da semana,
// menos os inícios já reservados.
func (uc *AvailableHours) Execute(
	ctx context.Context,
	fecha string,
	servicioID uint,
) ([]string, error) {

	servicio, err := uc.servicios.GetServicio(ctx, servicioID)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, httperr.ErrBusiness("servicio_invalido")
	}

	date, err := time.Parse(agenda.DateLayout, fecha)
	if err != nil {
		return nil, httperr.ErrBusiness("fecha_invalida")
	}

	horario, err := uc.horarios.GetHorarioForDia(ctx, agenda.WeekdayName(date))
	if err != nil {
		return nil, err
	}
	if horario == nil {
		return nil, httperr.ErrBusiness("horario_no_configurado")
	}

	slots, err := agenda.Slots(horario.Apertura, horario.Cierre, agenda.Granularity)
	if err != nil {
		return nil, err
	}

	citas, err := uc.citas.ListCitasForDay(ctx, fecha)
	if err != nil {
		return nil, err
	}

	durations := make(map[string]int)
	for _, cita := range citas {
		if _, ok := durations[cita.Servicio]; ok {
			continue
		}
		s, err := uc.servicios.FindServicioByNombre(ctx, cita.Servicio)
		if err != nil {
			return nil, err
		}
		if s != nil {
			durations[cita.Servicio] = s.DuracionMin
		}
	}

	busy, err := agenda.BusyIntervals(citas, durations)
	if err != nil {
		return nil, err
	}

	return agenda.AvailableHours(slots, busy), nil
}
