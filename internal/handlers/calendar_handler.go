package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/httpresp"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/booking"
	"github.com/EstiloSalon01/salon-agenda/internal/usecase/schedule"
)

type CalendarHandler struct {
	feedUC  *booking.CalendarFeed
	hoursUC *booking.AvailableHours
	catalog *schedule.Catalog
}

func NewCalendarHandler(
	feedUC *booking.CalendarFeed,
	hoursUC *booking.AvailableHours,
	catalog *schedule.Catalog,
) *CalendarHandler {
	return &CalendarHandler{
		feedUC:  feedUC,
		hoursUC: hoursUC,
		catalog: catalog,
	}
}

// Citas alimenta o widget do calendário: um evento de fundo por data
// materializada, verde ou vermelho.
func (h *CalendarHandler) Citas(c *gin.Context) {
	events, err := h.feedUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "feed_failed", "Error al cargar el calendario.")
		return
	}

	httpresp.OK(c, events)
}

type horasDisponiblesRequest struct {
	Fecha      string `json:"fecha" binding:"required"`
	ServicioID string `json:"servicio_id" binding:"required"`
}

func (h *CalendarHandler) HorasDisponibles(c *gin.Context) {
	var req horasDisponiblesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "datos_invalidos", "Fecha y servicio obligatorios.")
		return
	}

	// o select do formulário manda o id como string
	servicioID, err := strconv.ParseUint(req.ServicioID, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "servicio_invalido", "Servicio inválido.")
		return
	}

	horas, err := h.hoursUC.Execute(c.Request.Context(), req.Fecha, uint(servicioID))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "servicio_invalido"):
			httperr.BadRequest(c, "servicio_invalido", "Servicio inválido.")
		case httperr.IsBusiness(err, "fecha_invalida"):
			httperr.BadRequest(c, "fecha_invalida", "Fecha inválida.")
		case httperr.IsBusiness(err, "horario_no_configurado"):
			httperr.BadRequest(c, "horario_no_configurado", "No hay horario de atención para ese día.")
		case httperr.IsBusiness(err, "servicio_no_encontrado"):
			httperr.BadRequest(c, "servicio_no_encontrado", "Una cita referencia un servicio que ya no existe.")
		default:
			httperr.Internal(c, "horas_failed", "Error al calcular los horarios.")
		}
		return
	}

	httpresp.OK(c, gin.H{"horas_disponibles": horas})
}

// VerificarFechas despeja as linhas materializadas, para inspeção manual.
func (h *CalendarHandler) VerificarFechas(c *gin.Context) {
	fechas, err := h.catalog.AvailableDates(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "fechas_failed", "Error al cargar las fechas.")
		return
	}

	httpresp.List(c, fechas)
}
