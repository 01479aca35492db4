package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/flash"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/schedule"
)

type ScheduleHandler struct {
	upsertUC *schedule.UpsertHours
	addUC    *schedule.AddService
	removeUC *schedule.RemoveService
	catalog  *schedule.Catalog
	flash    *flash.Store
}

func NewScheduleHandler(
	upsertUC *schedule.UpsertHours,
	addUC *schedule.AddService,
	removeUC *schedule.RemoveService,
	catalog *schedule.Catalog,
	flash *flash.Store,
) *ScheduleHandler {
	return &ScheduleHandler{
		upsertUC: upsertUC,
		addUC:    addUC,
		removeUC: removeUC,
		catalog:  catalog,
		flash:    flash,
	}
}

// --------------------------------------------------
// Horarios
// --------------------------------------------------

func (h *ScheduleHandler) ShowHorarios(c *gin.Context) {
	horarios, err := h.catalog.Hours(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar los horarios.")
		return
	}

	c.HTML(http.StatusOK, "horarios.html", gin.H{
		"Horarios": horarios,
		"Dias":     agenda.WeekdayNames(),
		"Flash":    h.flash.Pop(c),
	})
}

func (h *ScheduleHandler) UpdateHorarios(c *gin.Context) {
	dia := c.PostForm("dia")
	apertura := c.PostForm("apertura")
	cierre := c.PostForm("cierre")

	if _, err := h.upsertUC.Execute(c.Request.Context(), dia, apertura, cierre); err != nil {
		switch {
		case httperr.IsBusiness(err, "dia_invalido"):
			h.flash.Set(c, "error", "Día de la semana inválido.")
		case httperr.IsBusiness(err, "horario_invalido"):
			h.flash.Set(c, "error", "Horario inválido, usa el formato HH:MM.")
		default:
			h.flash.Set(c, "error", "Error al guardar el horario.")
		}
		c.Redirect(http.StatusFound, "/admin/horarios")
		return
	}

	h.flash.Set(c, "success", "Horario de "+dia+" actualizado.")
	c.Redirect(http.StatusFound, "/admin/horarios")
}

// --------------------------------------------------
// Servicios
// --------------------------------------------------

func (h *ScheduleHandler) ShowServicios(c *gin.Context) {
	servicios, err := h.catalog.Services(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar los servicios.")
		return
	}

	c.HTML(http.StatusOK, "servicios.html", gin.H{
		"Servicios": servicios,
		"Flash":     h.flash.Pop(c),
	})
}

func (h *ScheduleHandler) AddServicio(c *gin.Context) {
	nombre := c.PostForm("nombre")
	duracion, err := strconv.Atoi(c.PostForm("duracion"))
	if err != nil {
		h.flash.Set(c, "error", "Duración inválida.")
		c.Redirect(http.StatusFound, "/admin/servicios")
		return
	}

	if _, err := h.addUC.Execute(c.Request.Context(), nombre, duracion); err != nil {
		switch {
		case httperr.IsBusiness(err, "servicio_duplicado"):
			h.flash.Set(c, "error", "Ya existe un servicio con ese nombre.")
		case httperr.IsBusiness(err, "servicio_invalido"):
			h.flash.Set(c, "error", "Nombre o duración inválidos.")
		default:
			h.flash.Set(c, "error", "Error al guardar el servicio.")
		}
		c.Redirect(http.StatusFound, "/admin/servicios")
		return
	}

	h.flash.Set(c, "success", "Servicio agregado correctamente.")
	c.Redirect(http.StatusFound, "/admin/servicios")
}

func (h *ScheduleHandler) DeleteServicio(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.flash.Set(c, "error", "Servicio inválido.")
		c.Redirect(http.StatusFound, "/admin/servicios")
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "servicio_no_encontrado") {
			h.flash.Set(c, "error", "El servicio no existe.")
		} else {
			h.flash.Set(c, "error", "Error al eliminar el servicio.")
		}
		c.Redirect(http.StatusFound, "/admin/servicios")
		return
	}

	h.flash.Set(c, "success", "Servicio eliminado.")
	c.Redirect(http.StatusFound, "/admin/servicios")
}
