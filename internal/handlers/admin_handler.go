package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EstiloSalon01/salon-agenda/internal/flash"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/booking"
)

type AdminHandler struct {
	listUC   *booking.ListCitas
	cancelUC *booking.CancelCita
	flash    *flash.Store
}

func NewAdminHandler(
	listUC *booking.ListCitas,
	cancelUC *booking.CancelCita,
	flash *flash.Store,
) *AdminHandler {
	return &AdminHandler{
		listUC:   listUC,
		cancelUC: cancelUC,
		flash:    flash,
	}
}

// ListCitas mostra todas as citas; com ?fecha=YYYY-MM-DD filtra o dia.
func (h *AdminHandler) ListCitas(c *gin.Context) {
	var (
		citas []models.Cita
		err   error
	)

	if fecha := c.Query("fecha"); fecha != "" {
		citas, err = h.listUC.ForDay(c.Request.Context(), fecha)
	} else {
		citas, err = h.listUC.All(c.Request.Context())
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar las citas.")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Citas": citas,
		"Flash": h.flash.Pop(c),
	})
}

func (h *AdminHandler) CancelarCita(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.flash.Set(c, "error", "Cita inválida.")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "cita_no_encontrada") {
			h.flash.Set(c, "error", "La cita no existe.")
		} else {
			h.flash.Set(c, "error", "Error al cancelar la cita.")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	h.flash.Set(c, "success", "Cita cancelada correctamente.")
	c.Redirect(http.StatusFound, "/admin")
}
