package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/EstiloSalon01/salon-agenda/internal/audit"
	"github.com/EstiloSalon01/salon-agenda/internal/config"
	"github.com/EstiloSalon01/salon-agenda/internal/flash"
	"github.com/EstiloSalon01/salon-agenda/internal/handlers"
	infraRepo "github.com/EstiloSalon01/salon-agenda/internal/infra/repository"
	ucBooking "github.com/EstiloSalon01/salon-agenda/internal/usecase/booking"
	ucSchedule "github.com/EstiloSalon01/salon-agenda/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	flashStore := flash.NewStore(cfg.SecretKey)

	// ======================================================
	// USE CASES
	// ======================================================
	createCitaUC := ucBooking.NewCreateCita(agendaRepo, agendaRepo, auditDispatcher)
	cancelCitaUC := ucBooking.NewCancelCita(agendaRepo, auditDispatcher)
	listCitasUC := ucBooking.NewListCitas(agendaRepo)
	availableHoursUC := ucBooking.NewAvailableHours(agendaRepo, agendaRepo, agendaRepo)
	calendarFeedUC := ucBooking.NewCalendarFeed(agendaRepo, agendaRepo)

	upsertHoursUC := ucSchedule.NewUpsertHours(agendaRepo, agendaRepo, auditDispatcher)
	addServiceUC := ucSchedule.NewAddService(agendaRepo, auditDispatcher)
	removeServiceUC := ucSchedule.NewRemoveService(agendaRepo, auditDispatcher)
	catalogUC := ucSchedule.NewCatalog(agendaRepo, agendaRepo, agendaRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(createCitaUC, catalogUC, flashStore)
	adminHandler := handlers.NewAdminHandler(listCitasUC, cancelCitaUC, flashStore)
	scheduleHandler := handlers.NewScheduleHandler(
		upsertHoursUC,
		addServiceUC,
		removeServiceUC,
		catalogUC,
		flashStore,
	)
	calendarHandler := handlers.NewCalendarHandler(calendarFeedUC, availableHoursUC, catalogUC)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.GET("/", bookingHandler.Index)
	r.POST("/agendar", bookingHandler.Agendar)
	r.GET("/confirmacion", bookingHandler.Confirmacion)

	r.GET("/citas", calendarHandler.Citas)
	r.POST("/horas_disponibles", calendarHandler.HorasDisponibles)

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	{
		admin.GET("", adminHandler.ListCitas)
		admin.POST("/cancelar_cita/:id", adminHandler.CancelarCita)

		admin.GET("/horarios", scheduleHandler.ShowHorarios)
		admin.POST("/horarios", scheduleHandler.UpdateHorarios)

		admin.GET("/servicios", scheduleHandler.ShowServicios)
		admin.POST("/servicios", scheduleHandler.AddServicio)
		admin.POST("/servicios/delete/:id", scheduleHandler.DeleteServicio)

		admin.GET("/verificar_fechas", calendarHandler.VerificarFechas)
	}

	// ======================================================
	// OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
