package invoice

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Diana-hub4/Demo-dian-back/internal/owner"
)

//go:generate mockgen -source=invoice_repo.go -destination=mock/invoice_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, inv *Invoice) error
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Invoice, error)
	FindAllByOwner(ctx context.Context, userID string) ([]Invoice, error)
	FindAllByClient(ctx context.Context, userID, clientID string) ([]Invoice, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, userID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, inv *Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Invoice, error) {
	var inv Invoice
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Preload("Items").
		First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) FindAllByOwner(ctx context.Context, userID string) ([]Invoice, error) {
	var invoices []Invoice
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Preload("Items").
		Order("issue_date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repository) FindAllByClient(ctx context.Context, userID, clientID string) ([]Invoice, error) {
	var invoices []Invoice
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Preload("Items").
		Where("id_client = ?", clientID).
		Order("issue_date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Invoice{}, "id = ?", id).Error
}
