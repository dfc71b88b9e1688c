package supplier

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	suppliererrors "github.com/Diana-hub4/Demo-dian-back/internal/supplier/errors"
)

//go:generate mockgen -source=supplier_service.go -destination=mock/supplier_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateSupplierRequest) (SupplierResponse, error)
	GetAll(ctx context.Context, userID string) ([]SupplierResponse, error)
	GetByID(ctx context.Context, userID, id string) (SupplierResponse, error)
	Update(ctx context.Context, userID, id string, req UpdateSupplierRequest) (SupplierResponse, error)
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
	req CreateSupplierRequest,
) (SupplierResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SupplierResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// A supplier is a duplicate when either the tax id or the email is
	// already registered for this owner.
	existing, err := qtx.FindByTaxIDOrEmail(ctx, userID, req.TaxID, req.Email)
	if err != nil {
		return SupplierResponse{}, err
	}
	if existing != nil {
		return SupplierResponse{}, suppliererrors.ErrDuplicateSupplier
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	supplier := &Supplier{
		ID:                   uuid.New(),
		IDUser:               userUUID,
		Name:                 req.Name,
		PersonType:           req.PersonType,
		TaxID:                req.TaxID,
		DocumentType:         req.DocumentType,
		IdentificationNumber: req.IdentificationNumber,
		BusinessReason:       req.BusinessReason,
		Email:                req.Email,
		ContactNumber:        req.ContactNumber,
		Address:              req.Address,
		City:                 req.City,
		RegimeType:           req.RegimeType,
		Status:               status,
	}

	if err := qtx.Create(ctx, supplier); err != nil {
		return SupplierResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SupplierResponse{}, err
	}

	return mapToResponse(*supplier), nil
}

func (s *service) GetAll(ctx context.Context, userID string) ([]SupplierResponse, error) {
	suppliers, err := s.repo.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(suppliers), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (SupplierResponse, error) {
	supplier, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return SupplierResponse{}, err
	}
	if supplier == nil {
		return SupplierResponse{}, suppliererrors.ErrSupplierNotFound
	}

	return mapToResponse(*supplier), nil
}

func (s *service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateSupplierRequest,
) (SupplierResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SupplierResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	supplier, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return SupplierResponse{}, err
	}
	if supplier == nil {
		return SupplierResponse{}, suppliererrors.ErrSupplierNotFound
	}

	applyPatch(supplier, req)

	if err := qtx.Update(ctx, supplier); err != nil {
		return SupplierResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SupplierResponse{}, err
	}

	return mapToResponse(*supplier), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	supplier, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return suppliererrors.ErrSupplierNotFound
	}

	if err := qtx.Delete(ctx, userID, id); err != nil {
		return err
	}

	return tx.Commit()
}

func applyPatch(s *Supplier, req UpdateSupplierRequest) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.PersonType != nil {
		s.PersonType = *req.PersonType
	}
	if req.TaxID != nil {
		s.TaxID = *req.TaxID
	}
	if req.DocumentType != nil {
		s.DocumentType = *req.DocumentType
	}
	if req.IdentificationNumber != nil {
		s.IdentificationNumber = *req.IdentificationNumber
	}
	if req.BusinessReason != nil {
		s.BusinessReason = *req.BusinessReason
	}
	if req.Email != nil {
		s.Email = *req.Email
	}
	if req.ContactNumber != nil {
		s.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		s.Address = *req.Address
	}
	if req.City != nil {
		s.City = *req.City
	}
	if req.RegimeType != nil {
		s.RegimeType = *req.RegimeType
	}
	if req.Status != nil {
		s.Status = *req.Status
	}
}
