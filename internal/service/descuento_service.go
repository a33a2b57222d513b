package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cuadre/internal/dto"
	"cuadre/internal/model"
	"cuadre/internal/repository"

	"github.com/google/uuid"
)

type DescuentoService interface {
	Crear(ctx context.Context, req dto.CrearDescuentoRequest) (*dto.DescuentoResponse, error)
	ListarPorFecha(ctx context.Context, fecha time.Time) ([]dto.DescuentoResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDescuentoRequest) (*dto.DescuentoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type descuentoService struct {
	repo repository.DescuentoRepository
}

func NewDescuentoService(repo repository.DescuentoRepository) DescuentoService {
	return &descuentoService{repo: repo}
}

func (s *descuentoService) Crear(ctx context.Context, req dto.CrearDescuentoRequest) (*dto.DescuentoResponse, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha invalida: %w", err)
	}

	d := &model.Descuento{
		Fecha:  fecha,
		Folio:  req.Folio,
		Monto:  req.Monto,
		Motivo: req.Motivo,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return aRespuesta(d), nil
}

func (s *descuentoService) ListarPorFecha(ctx context.Context, fecha time.Time) ([]dto.DescuentoResponse, error) {
	ds, err := s.repo.ListByFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DescuentoResponse, 0, len(ds))
	for i := range ds {
		resp = append(resp, *aRespuesta(&ds[i]))
	}
	return resp, nil
}

func (s *descuentoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarDescuentoRequest) (*dto.DescuentoResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("descuento no encontrado")
	}
	if !req.Monto.IsZero() {
		d.Monto = req.Monto
	}
	if req.Motivo != "" {
		d.Motivo = req.Motivo
	}
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return aRespuesta(d), nil
}

func (s *descuentoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("descuento no encontrado")
	}
	return s.repo.Delete(ctx, id)
}

func aRespuesta(d *model.Descuento) *dto.DescuentoResponse {
	return &dto.DescuentoResponse{
		ID:     d.ID.String(),
		Fecha:  d.Fecha.Format("2006-01-02"),
		Folio:  d.Folio,
		Monto:  d.Monto,
		Motivo: d.Motivo,
	}
}
