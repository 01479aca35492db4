package booking

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

// Repositório em memória para os testes de use case, no espírito dos stub
// queriers usados nos testes de repositório do restante do código.
type stubRepo struct {
	clientes  []models.Cliente
	citas     []models.Cita
	servicios []models.Servicio
	horarios  []models.HorarioAtencion
	fechas    []models.FechaDisponible

	clientesCreated int
	citasCreated    int
	citasDeleted    int
}

func newStubRepo() *stubRepo {
	return &stubRepo{}
}

func (s *stubRepo) FindClienteByEmail(_ context.Context, email string) (*models.Cliente, error) {
	for i := range s.clientes {
		if s.clientes[i].Email == email {
			return &s.clientes[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) CreateCliente(_ context.Context, cliente *models.Cliente) error {
	s.clientesCreated++
	cliente.ID = uint(len(s.clientes) + 1)
	s.clientes = append(s.clientes, *cliente)
	return nil
}

func (s *stubRepo) CreateCita(_ context.Context, cita *models.Cita) error {
	s.citasCreated++
	cita.ID = uint(len(s.citas) + 1)
	s.citas = append(s.citas, *cita)
	return nil
}

func (s *stubRepo) GetCita(_ context.Context, id uint) (*models.Cita, error) {
	for i := range s.citas {
		if s.citas[i].ID == id {
			return &s.citas[i], nil
		}
	}
	return nil, nil
}

func (s *stubRepo) DeleteCita(_ context.Context, id uint) error {
	s.citasDeleted++
	for i := range s.citas {
		if s.citas[i].ID == id {
			s.citas = append(s.citas[:i], s.citas[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubRepo) ListCitas(_ context.Context) ([]models.Cita, error) {
	return s.citas, nil
}

func (s *stubRepo) ListCitasForDay(_ context.Context, fecha string) ([]models.Cita, error) {
	var out []models.Cita
	for _, c := range s.citas {
		if c.Fecha == fecha {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) CountCitasForDay(_ context.Context, fecha string) (int64, error) {
	var count int64
	for _, c := range s.citas {
		if c.Fecha == fecha {
			count++
		}
	}
	return count, nil
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
	servicio.ID = uint(len(s.servicios) + 1)
	s.servicios = append(s.servicios, *servicio)
	return nil
}

func (s *stubRepo) DeleteServicio(_ context.Context, id uint) error {
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
