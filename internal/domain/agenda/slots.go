package agenda

import (
	"time"

	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

const (
	// Granularity é o passo entre horários candidatos.
	Granularity = 15 * time.Minute

	hourLayout = "15:04"
)

// Slots gera os horários candidatos entre apertura (inclusive) e cierre
// (exclusive), avançando de granularity em granularity. Intervalo
// semiaberto: nenhum slot começa em cierre ou depois.
func Slots(apertura, cierre string, granularity time.Duration) ([]string, error) {
	open, err := time.Parse(hourLayout, apertura)
	if err != nil {
		return nil, httperr.ErrBusiness("horario_invalido")
	}
	end, err := time.Parse(hourLayout, cierre)
	if err != nil {
		return nil, httperr.ErrBusiness("horario_invalido")
	}
	if granularity <= 0 {
		granularity = Granularity
	}

	var slots []string
	for cur := open; cur.Before(end); cur = cur.Add(granularity) {
		slots = append(slots, cur.Format(hourLayout))
	}
	return slots, nil
}

type BusyInterval struct {
	Start string
	End   string
}

// BusyIntervals monta (inicio, fim) para cada cita do dia: fim = inicio +
// duração do serviço, resolvido por nome exato no catálogo. Serviço
// removido do catálogo é erro, nunca uma duração default silenciosa.
func BusyIntervals(citas []models.Cita, durations map[string]int) ([]BusyInterval, error) {
	intervals := make([]BusyInterval, 0, len(citas))
	for _, cita := range citas {
		dur, ok := durations[cita.Servicio]
		if !ok {
			return nil, httperr.ErrBusiness("servicio_no_encontrado")
		}

		start, err := time.Parse(hourLayout, cita.Hora)
		if err != nil {
			return nil, httperr.ErrBusiness("hora_invalida")
		}

		intervals = append(intervals, BusyInterval{
			Start: start.Format(hourLayout),
			End:   start.Add(time.Duration(dur) * time.Minute).Format(hourLayout),
		})
	}
	return intervals, nil
}

// AvailableHours filtra os candidatos contra os intervalos ocupados.
//
// A exclusão é por igualdade exata de início: um slot só sai da lista se o
// seu início coincidir com o início de uma cita. Slots cobertos pelo resto
// do intervalo continuam ofertados. É o comportamento que o formulário de
// reserva sempre teve; ver README antes de "corrigir".
func AvailableHours(slots []string, busy []BusyInterval) []string {
	taken := make(map[string]struct{}, len(busy))
	for _, b := range busy {
		taken[b.Start] = struct{}{}
	}

	available := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		available = append(available, s)
	}
	return available
}
