package agenda

import (
	"context"

	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

// Um repositório explícito por entidade; nenhuma sessão global do ORM.
// Lookups devolvem (nil, nil) quando o registro não existe.

type Clientes interface {
	FindClienteByEmail(ctx context.Context, email string) (*models.Cliente, error)
	CreateCliente(ctx context.Context, cliente *models.Cliente) error
}

type Citas interface {
	CreateCita(ctx context.Context, cita *models.Cita) error
	GetCita(ctx context.Context, id uint) (*models.Cita, error)
	DeleteCita(ctx context.Context, id uint) error
	ListCitas(ctx context.Context) ([]models.Cita, error)
	ListCitasForDay(ctx context.Context, fecha string) ([]models.Cita, error)
	CountCitasForDay(ctx context.Context, fecha string) (int64, error)
}

type Servicios interface {
	GetServicio(ctx context.Context, id uint) (*models.Servicio, error)
	FindServicioByNombre(ctx context.Context, nombre string) (*models.Servicio, error)
	CreateServicio(ctx context.Context, servicio *models.Servicio) error
	DeleteServicio(ctx context.Context, id uint) error
	ListServicios(ctx context.Context) ([]models.Servicio, error)
}

type Horarios interface {
	GetHorarioForDia(ctx context.Context, dia string) (*models.HorarioAtencion, error)
	SaveHorario(ctx context.Context, horario *models.HorarioAtencion) error
	ListHorarios(ctx context.Context) ([]models.HorarioAtencion, error)
}

type FechasDisponibles interface {
	UpsertFechaDisponible(ctx context.Context, fecha *models.FechaDisponible) error
	ListFechasDisponibles(ctx context.Context) ([]models.FechaDisponible, error)
}

// Repository agrega as interfaces por entidade; a implementação GORM
// satisfaz todas sobre o mesmo handle.
type Repository interface {
	Clientes
	Citas
	Servicios
	Horarios
	FechasDisponibles
}
