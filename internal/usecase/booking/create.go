package booking

import (
	"context"
	"time"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/metrics"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCitaInput struct {
	Nombre     string
	Email      string
	Telefono   string
	Direccion  string
	Cumpleanos string
	Lugar      string
	Pago       string

	Servicio string
	Fecha    string
	Hora     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCita struct {
	clientes agenda.Clientes
	citas    agenda.Citas
	audit    *audit.Dispatcher
}

func NewCreateCita(
	clientes agenda.Clientes,
	citas agenda.Citas,
	audit *audit.Dispatcher,
) *CreateCita {
	return &CreateCita{
		clientes: clientes,
		citas:    citas,
		audit:    audit,
	}
}

// Execute agenda uma cita. O Cliente é resolvido pelo email: na primeira
// reserva o perfil completo do formulário é persistido; em reservas
// seguintes os campos de perfil enviados são ignorados e o registro
// existente fica intacto. Não há verificação de conflito de horário: duas
// requests no mesmo slot criam duas citas.
func (uc *CreateCita) Execute(
	ctx context.Context,
	in CreateCitaInput,
) (*models.Cita, error) {

	if in.Nombre == "" || in.Email == "" || in.Servicio == "" {
		metrics.CitasFailed.Inc()
		return nil, httperr.ErrBusiness("cita_invalida")
	}
	if _, err := time.Parse(agenda.DateLayout, in.Fecha); err != nil {
		metrics.CitasFailed.Inc()
		return nil, httperr.ErrBusiness("cita_invalida")
	}
	if _, err := time.Parse("15:04", in.Hora); err != nil {
		metrics.CitasFailed.Inc()
		return nil, httperr.ErrBusiness("cita_invalida")
	}

	cliente, err := uc.clientes.FindClienteByEmail(ctx, in.Email)
	if err != nil {
		metrics.CitasFailed.Inc()
		return nil, err
	}

	if cliente == nil {
		cliente = &models.Cliente{
			Nombre:     in.Nombre,
			Email:      in.Email,
			Telefono:   in.Telefono,
			Direccion:  in.Direccion,
			Cumpleanos: in.Cumpleanos,
			Lugar:      in.Lugar,
			Pago:       in.Pago,
		}
		if err := uc.clientes.CreateCliente(ctx, cliente); err != nil {
			metrics.CitasFailed.Inc()
			return nil, err
		}
	}

	cita := &models.Cita{
		ClienteID: cliente.ID,
		Servicio:  in.Servicio,
		Fecha:     in.Fecha,
		Hora:      in.Hora,
		Lugar:     in.Lugar,
	}

	if err := uc.citas.CreateCita(ctx, cita); err != nil {
		metrics.CitasFailed.Inc()
		return nil, err
	}

	metrics.CitasCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		Action:   "cita_created",
		Entity:   "cita",
		EntityID: &cita.ID,
		Metadata: map[string]string{"fecha": cita.Fecha, "hora": cita.Hora},
	})

	return cita, nil
}
