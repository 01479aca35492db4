package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EstiloSalon01/salon-agenda/internal/flash"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/booking"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/schedule"
)

type BookingHandler struct {
	createUC *booking.CreateCita
	catalog  *schedule.Catalog
	flash    *flash.Store
}

func NewBookingHandler(
	createUC *booking.CreateCita,
	catalog *schedule.Catalog,
	flash *flash.Store,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		catalog:  catalog,
		flash:    flash,
	}
}

// Index renderiza o formulário de reserva com o catálogo de serviços.
func (h *BookingHandler) Index(c *gin.Context) {
	servicios, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar los servicios.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Servicios": servicios,
	})
}

// Agendar processa o POST do formulário. Sucesso ou falha, o usuário é
// redirecionado para /confirmacion; só a flash message distingue os dois.
func (h *BookingHandler) Agendar(c *gin.Context) {
	in := booking.CreateCitaInput{
		Nombre:     c.PostForm("nombre"),
		Email:      c.PostForm("email"),
		Telefono:   c.PostForm("telefono"),
		Direccion:  c.PostForm("direccion"),
		Cumpleanos: c.PostForm("cumpleanos"),
		Lugar:      c.PostForm("lugar"),
		Pago:       c.PostForm("pago"),
		Servicio:   c.PostForm("servicio"),
		Fecha:      c.PostForm("fecha"),
		Hora:       c.PostForm("hora"),
	}

	cita, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		if httperr.IsBusiness(err, "cita_invalida") {
			h.flash.Set(c, "error", "Los datos de la cita no son válidos.")
		} else {
			h.flash.Set(c, "error", "Hubo un error al agendar tu cita.")
		}
		c.Redirect(http.StatusFound, "/confirmacion")
		return
	}

	h.flash.Set(c, "success", fmt.Sprintf(
		"Tu cita ha sido agendada correctamente para el %s a las %s.",
		cita.Fecha, cita.Hora,
	))
	c.Redirect(http.StatusFound, "/confirmacion")
}

func (h *BookingHandler) Confirmacion(c *gin.Context) {
	c.HTML(http.StatusOK, "confirmacion.html", gin.H{
		"Flash": h.flash.Pop(c),
	})
}
