package repository

import (
	"context"
	"time"

	"cuadre/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DescuentoRepository interface {
	Create(ctx context.Context, d *model.Descuento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Descuento, error)
	ListByFecha(ctx context.Context, fecha time.Time) ([]model.Descuento, error)
	Update(ctx context.Context, d *model.Descuento) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type descuentoRepo struct{ db *gorm.DB }

func NewDescuentoRepository(db *gorm.DB) DescuentoRepository { return &descuentoRepo{db: db} }

func (r *descuentoRepo) Create(ctx context.Context, d *model.Descuento) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *descuentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Descuento, error) {
	var d model.Descuento
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *descuentoRepo) ListByFecha(ctx context.Context, fecha time.Time) ([]model.Descuento, error) {
	var ds []model.Descuento
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha.Format("2006-01-02")).
		Order("created_at ASC").
		Find(&ds).Error
	return ds, err
}

func (r *descuentoRepo) Update(ctx context.Context, d *model.Descuento) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *descuentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Descuento{}, id).Error
}
