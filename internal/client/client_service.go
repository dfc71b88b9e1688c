package client

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	clienterrors "github.com/Diana-hub4/Demo-dian-back/internal/client/errors"
)

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateClientRequest) (ClientResponse, error)
	GetAll(ctx context.Context, userID string) ([]ClientResponse, error)
	GetByID(ctx context.Context, userID, id string) (ClientResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, userID, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	userID string,
	req CreateClientRequest,
) (ClientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByTaxIDAndOwner(ctx, userID, req.TaxID)
	if err != nil {
		return ClientResponse{}, err
	}
	if existing != nil {
		return ClientResponse{}, clienterrors.ErrDuplicateClient
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	client := &Client{
		ID:                   uuid.New(),
		IDUser:               userUUID,
		Name:                 req.Name,
		PersonType:           req.PersonType,
		TaxID:                req.TaxID,
		DocumentType:         req.DocumentType,
		IdentificationNumber: req.IdentificationNumber,
		Status:               status,
	}

	if err := qtx.Create(ctx, client); err != nil {
		return ClientResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	return mapToResponse(*client), nil
}

func (s *service) GetAll(ctx context.Context, userID string) ([]ClientResponse, error) {
	clients, err := s.repo.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(clients), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (ClientResponse, error) {
	client, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return ClientResponse{}, err
	}
	if client == nil {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}

	return mapToResponse(*client), nil
}

func (s *service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateClientRequest,
) (ClientResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClientResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	client, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return ClientResponse{}, err
	}
	if client == nil {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.PersonType != nil {
		client.PersonType = *req.PersonType
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.DocumentType != nil {
		client.DocumentType = *req.DocumentType
	}
	if req.IdentificationNumber != nil {
		client.IdentificationNumber = *req.IdentificationNumber
	}
	if req.Status != nil {
		client.Status = *req.Status
	}

	if err := qtx.Update(ctx, client); err != nil {
		return ClientResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClientResponse{}, err
	}

	return mapToResponse(*client), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	client, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	if client == nil {
		return clienterrors.ErrClientNotFound
	}

	if err := qtx.Delete(ctx, userID, id); err != nil {
		return err
	}

	return tx.Commit()
}
