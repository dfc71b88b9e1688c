package invoice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Diana-hub4/Demo-dian-back/internal/invoice/dian"
	invoiceerrors "github.com/Diana-hub4/Demo-dian-back/internal/invoice/errors"
	"github.com/Diana-hub4/Demo-dian-back/internal/shared/counter"
)

const invoiceCounterType = "invoice"

//go:generate mockgen -source=invoice_service.go -destination=mock/invoice_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateInvoiceRequest) (InvoiceResponse, error)
	GetByID(ctx context.Context, userID, id string) (InvoiceResponse, error)
	GetAll(ctx context.Context, userID string) ([]InvoiceResponse, error)
	ListByClient(ctx context.Context, userID, clientID string) ([]InvoiceResponse, error)
	UpdateStatus(ctx context.Context, userID, id string, req UpdateInvoiceStatusRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	company dian.Company
	now     func() time.Time
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, company dian.Company, opts ...Option) Service {
	s := &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		company: company,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(
	ctx context.Context,
	userID string,
	req CreateInvoiceRequest,
) (InvoiceResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return InvoiceResponse{}, invoiceerrors.ErrInvalidUserID
	}
	clientUUID, err := uuid.Parse(req.IDClient)
	if err != nil {
		return InvoiceResponse{}, invoiceerrors.ErrInvalidClientID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := s.counter.GetNextValue(ctx, userID, invoiceCounterType)
	if err != nil {
		return InvoiceResponse{}, err
	}
	invoiceNumber := fmt.Sprintf("FV-%06d", seq)

	issueDate := s.now().UTC()
	invoiceID := uuid.New()

	items := make([]InvoiceItem, len(req.Items))
	lines := make([]LineTotals, len(req.Items))
	for i, item := range req.Items {
		line := ComputeLineTotals(item.Quantity, item.UnitPrice, item.Discount, item.Tax)
		lines[i] = line
		items[i] = InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Tax:         item.Tax,
			Total:       line.Total,
		}
	}

	totals := ComputeInvoiceTotals(lines, req.TaxWithholding, req.ICAWithholding)

	cufe, err := dian.GenerateCUFE(s.company, dian.CUFEInputs{
		InvoiceNumber: invoiceNumber,
		IssueDate:     issueDate,
		Total:         totals.Total,
		ClientID:      req.ClientTaxID,
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	qrCode, err := dian.GenerateQRCode(s.company, dian.QRInputs{
		InvoiceNumber: invoiceNumber,
		IssueDate:     issueDate,
		Total:         totals.Total,
		TotalTaxes:    totals.TotalTaxes,
		CUFE:          cufe,
	})
	if err != nil {
		return InvoiceResponse{}, err
	}

	inv := &Invoice{
		ID:            invoiceID,
		IDUser:        userUUID,
		IDClient:      clientUUID,
		InvoiceNumber: invoiceNumber,
		InvoiceType:   req.InvoiceType,
		CUFE:          &cufe,
		QRCode:        &qrCode,
		IssueDate:     issueDate,
		ClientName:    req.ClientName,
		ClientTaxID:   req.ClientTaxID,
		ClientEmail:   req.ClientEmail,

		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		TotalTaxes:    totals.TotalTaxes,
		Total:         totals.Total,

		TaxWithholding: req.TaxWithholding,
		ICAWithholding: req.ICAWithholding,

		Status:         StatusDraft,
		PaymentMethods: req.PaymentMethods,
		Items:          items,
	}

	if req.PaymentDueDate != nil {
		due, err := time.Parse("2006-01-02", *req.PaymentDueDate)
		if err != nil {
			return InvoiceResponse{}, err
		}
		inv.PaymentDueDate = &due
	}

	if err := qtx.Create(ctx, inv); err != nil {
		return InvoiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return InvoiceResponse{}, err
	}

	return mapToResponse(*inv), nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (InvoiceResponse, error) {
	inv, err := s.repo.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return InvoiceResponse{}, err
	}
	if inv == nil {
		return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
	}

	return mapToResponse(*inv), nil
}

func (s *service) GetAll(ctx context.Context, userID string) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(invoices), nil
}

func (s *service) ListByClient(ctx context.Context, userID, clientID string) ([]InvoiceResponse, error) {
	invoices, err := s.repo.FindAllByClient(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(invoices), nil
}

func (s *service) UpdateStatus(
	ctx context.Context,
	userID, id string,
	req UpdateInvoiceStatusRequest,
) (InvoiceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inv, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return InvoiceResponse{}, err
	}
	if inv == nil {
		return InvoiceResponse{}, invoiceerrors.ErrInvoiceNotFound
	}

	if !validTransition(inv.Status, req.Status) {
		return InvoiceResponse{}, invoiceerrors.ErrInvalidStatusTransition
	}

	if err := qtx.UpdateStatus(ctx, id, req.Status); err != nil {
		return InvoiceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return InvoiceResponse{}, err
	}

	inv.Status = req.Status
	return mapToResponse(*inv), nil
}

func (s *service) Delete(ctx context.Context, userID, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inv, err := qtx.FindByIDAndOwner(ctx, userID, id)
	if err != nil {
		return false, err
	}
	if inv == nil {
		return false, nil
	}
	if inv.Status != StatusDraft {
		return false, invoiceerrors.ErrInvoiceNotDraft
	}

	if err := qtx.Delete(ctx, userID, id); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

// validTransition: draft can be sent or cancelled, sent can be paid or
// cancelled, paid and cancelled are terminal.
func validTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusDraft:
		return to == StatusSent || to == StatusCancelled
	case StatusSent:
		return to == StatusPaid || to == StatusCancelled
	default:
		return false
	}
}
