package booking

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
)

// Capacidade fixa do dia: com 8 ou mais citas a data aparece lotada no
// calendário.
const MaxCitasPerDay = 8

// CalendarEvent é o formato de evento de fundo que o FullCalendar consome.
type CalendarEvent struct {
	Title   string `json:"title"`
	Start   string `json:"start"`
	Display string `json:"display"`
	Color   string `json:"color"`
}

type CalendarFeed struct {
	fechas agenda.FechasDisponibles
	citas  agenda.Citas
}

func NewCalendarFeed(
	fechas agenda.FechasDisponibles,
	citas agenda.Citas,
) *CalendarFeed {
	return &CalendarFeed{
		fechas: fechas,
		citas:  citas,
	}
}

// Execute produz um evento por data materializada: verde ("Disponible")
// enquanto houver capacidade, vermelho ("No disponible") quando o dia
// atinge MaxCitasPerDay.
func (uc *CalendarFeed) Execute(ctx context.Context) ([]CalendarEvent, error) {

	fechas, err := uc.fechas.ListFechasDisponibles(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(fechas))
	for _, fecha := range fechas {
		count, err := uc.citas.CountCitasForDay(ctx, fecha.Fecha)
		if err != nil {
			return nil, err
		}

		ev := CalendarEvent{
			Title:   "Disponible",
			Start:   fecha.Fecha,
			Display: "background",
			Color:   "green",
		}
		if count >= MaxCitasPerDay {
			ev.Title = "No disponible"
			ev.Color = "red"
		}

		events = append(events, ev)
	}

	return events, nil
}
