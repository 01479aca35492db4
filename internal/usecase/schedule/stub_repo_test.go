package schedule

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

type stubRepo struct {
	servicios []models.Servicio
	horarios  []models.HorarioAtencion
	fechas    []models.FechaDisponible

	serviciosCreated int
	serviciosDeleted int
}

func newStubRepo() *stubRepo {
	return &stubRepo{}
}

func (s *stubRepo) GetServicio(_ context.Context, id uint) (*models.Servicio, error) {
	for i := range s.servicios {
		if s.servicios[i].ID == id {
			return &s.servicios[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) FindServicioByNombre(_ context.Context, nombre string) (*models.Servicio, error) {
	for i := range s.servicios {
		if s.servicios[i].Nombre == nombre {
			return &s.servicios[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) CreateServicio(_ context.Context, servicio *models.Servicio) error {
	s.serviciosCreated++
	servicio.ID = uint(len(s.servicios) + 1)
	s.servicios = append(s.servicios, *servicio)
	return nil
}

func (s *stubRepo) DeleteServicio(_ context.Context, id uint) error {
	s.serviciosDeleted++
	for i := range s.servicios {
		if s.servicios[i].ID == id {
			s.servicios = append(s.servicios[:i], s.servicios[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubRepo) ListServicios(_ context.Context) ([]models.Servicio, error) {
	return s.servicios, nil
}

func (s *stubRepo) GetHorarioForDia(_ context.Context, dia string) (*models.HorarioAtencion, error) {
	for i := range s.horarios {
		if s.horarios[i].Dia == dia {
			return &s.horarios[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) SaveHorario(_ context.Context, horario *models.HorarioAtencion) error {
	for i := range s.horarios {
		if s.horarios[i].Dia == horario.Dia {
			s.horarios[i] = *horario
			return nil
		}
	}
	horario.ID = uint(len(s.horarios) + 1)
	s.horarios = append(s.horarios, *horario)
	return nil
}

func (s *stubRepo) ListHorarios(_ context.Context) ([]models.HorarioAtencion, error) {
	return s.horarios, nil
}

func (s *stubRepo) UpsertFechaDisponible(_ context.Context, fecha *models.FechaDisponible) error {
	for i := range s.fechas {
		if s.fechas[i].Fecha == fecha.Fecha {
			s.fechas[i].Dia = fecha.Dia
			return nil
		}
	}
	fecha.ID = uint(len(s.fechas) + 1)
	s.fechas = append(s.fechas, *fecha)
	return nil
}

func (s *stubRepo) ListFechasDisponibles(_ context.Context) ([]models.FechaDisponible, error) {
	return s.fechas, nil
}

type noopSink struct{}

func (noopSink) Log(string, string, *uint, any) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}
