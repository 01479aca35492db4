package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/EstiloSalon01/salon-agenda/internal/domain/agenda"
	"github.com/EstiloSalon01/salon-agenda/internal/httperr"
	"github.com/EstiloSalon01/salon-agenda/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *AgendaGormRepository) FindClienteByEmail(
	ctx context.Context,
	email string,
) (*models.Cliente, error) {

	var cliente models.Cliente
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&cliente).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *AgendaGormRepository) CreateCliente(
	ctx context.Context,
	cliente *models.Cliente,
) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

// --------------------------------------------------
// Cita
// --------------------------------------------------

func (r *AgendaGormRepository) CreateCita(
	ctx context.Context,
	cita *models.Cita,
) error {
	return r.db.WithContext(ctx).Create(cita).Error
}

func (r *AgendaGormRepository) GetCita(
	ctx context.Context,
	id uint,
) (*models.Cita, error) {

	var cita models.Cita
	err := r.db.WithContext(ctx).First(&cita, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cita, nil
}

func (r *AgendaGormRepository) DeleteCita(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Cita{}, id).Error
}

func (r *AgendaGormRepository) ListCitas(
	ctx context.Context,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Order("fecha ASC, hora ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AgendaGormRepository) ListCitasForDay(
	ctx context.Context,
	fecha string,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha).
		Order("hora ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AgendaGormRepository) CountCitasForDay(
	ctx context.Context,
	fecha string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Cita{}).
		Where("fecha = ?", fecha).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Servicio
// --------------------------------------------------

func (r *AgendaGormRepository) GetServicio(
	ctx context.Context,
	id uint,
) (*models.Servicio, error) {

	var servicio models.Servicio
	err := r.db.WithContext(ctx).First(&servicio, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &servicio, nil
}

func (r *AgendaGormRepository) FindServicioByNombre(
	ctx context.Context,
	nombre string,
) (*models.Servicio, error) {

	var servicio models.Servicio
	err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&servicio).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &servicio, nil
}

func (r *AgendaGormRepository) CreateServicio(
	ctx context.Context,
	servicio *models.Servicio,
) error {
	err := r.db.WithContext(ctx).Create(servicio).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("servicio_duplicado")
	}
	return err
}

func (r *AgendaGormRepository) DeleteServicio(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Servicio{}, id).Error
}

func (r *AgendaGormRepository) ListServicios(
	ctx context.Context,
) ([]models.Servicio, error) {

	var servicios []models.Servicio
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&servicios).Error; err != nil {
		return nil, err
	}
	return servicios, nil
}

// --------------------------------------------------
// HorarioAtencion
// --------------------------------------------------

func (r *AgendaGormRepository) GetHorarioForDia(
	ctx context.Context,
	dia string,
) (*models.HorarioAtencion, error) {

	var horario models.HorarioAtencion
	err := r.db.WithContext(ctx).
		Where("dia = ?", dia).
		First(&horario).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &horario, nil
}

func (r *AgendaGormRepository) SaveHorario(
	ctx context.Context,
	horario *models.HorarioAtencion,
) error {
	return r.db.WithContext(ctx).Save(horario).Error
}

func (r *AgendaGormRepository) ListHorarios(
	ctx context.Context,
) ([]models.HorarioAtencion, error) {

	var horarios []models.HorarioAtencion
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&horarios).Error; err != nil {
		return nil, err
	}
	return horarios, nil
}

// --------------------------------------------------
// FechaDisponible
// --------------------------------------------------

func (r *AgendaGormRepository) UpsertFechaDisponible(
	ctx context.Context,
	fecha *models.FechaDisponible,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fecha"}},
			DoUpdates: clause.AssignmentColumns([]string{"dia"}),
		}).
		Create(fecha).Error
}

func (r *AgendaGormRepository) ListFechasDisponibles(
	ctx context.Context,
) ([]models.FechaDisponible, error) {

	var fechas []models.FechaDisponible
	if err := r.db.WithContext(ctx).
		Order("fecha ASC").
		Find(&fechas).Error; err != nil {
		return nil, err
	}
	return fechas, nil
}

// Compile-time check
var _ agenda.Repository = (*AgendaGormRepository)(nil)
