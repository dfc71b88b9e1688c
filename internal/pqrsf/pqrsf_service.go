package pqrsf

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	pqrsferrors "github.com/Diana-hub4/Demo-dian-back/internal/pqrsf/errors"
)

//go:generate mockgen -source=pqrsf_service.go -destination=mock/pqrsf_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePQRSFRequest) (PQRSFResponse, error)
	GetByID(ctx context.Context, id string) (PQRSFResponse, error)
	GetAll(ctx context.Context) ([]PQRSFResponse, error)
	Update(ctx context.Context, id string, req UpdatePQRSFRequest) (PQRSFResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
	Process(ctx context.Context, id string) (ProcessResult, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePQRSFRequest) (PQRSFResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PQRSFResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &PQRSF{
		ID:        uuid.New(),
		PqrsfType: req.PqrsfType,
		Message:   req.Message,
		Status:    StatusReceived,
	}

	if err := qtx.Create(ctx, p); err != nil {
		return PQRSFResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PQRSFResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PQRSFResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PQRSFResponse{}, err
	}
	if p == nil {
		return PQRSFResponse{}, pqrsferrors.ErrPQRSFNotFound
	}

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PQRSFResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(items), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePQRSFRequest) (PQRSFResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PQRSFResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PQRSFResponse{}, err
	}
	if p == nil {
		return PQRSFResponse{}, pqrsferrors.ErrPQRSFNotFound
	}

	if req.PqrsfType != nil {
		p.PqrsfType = *req.PqrsfType
	}
	if req.Message != nil {
		p.Message = *req.Message
	}

	if err := qtx.Update(ctx, p); err != nil {
		return PQRSFResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PQRSFResponse{}, err
	}

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

func (s *service) Process(ctx context.Context, id string) (ProcessResult, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProcessResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProcessResult{}, err
	}
	if p == nil {
		return ProcessResult{}, pqrsferrors.ErrPQRSFNotFound
	}

	p.Status = StatusProcessed
	if err := qtx.Update(ctx, p); err != nil {
		return ProcessResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		Status:  StatusProcessed,
		Message: fmt.Sprintf("la solicitud PQRSF de tipo %s ha sido procesada", p.PqrsfType),
	}, nil
}
