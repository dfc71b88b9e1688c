package supplier

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/Diana-hub4/Demo-dian-back/internal/owner"
)

//go:generate mockgen -source=supplier_repo.go -destination=mock/supplier_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, supplier *Supplier) error
	FindAllByOwner(ctx context.Context, userID string) ([]Supplier, error)
	FindByIDAndOwner(ctx context.Context, userID, id string) (*Supplier, error)
	FindByTaxIDOrEmail(ctx context.Context, userID, taxID, email string) (*Supplier, error)
	Update(ctx context.Context, supplier *Supplier) error
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

func (r *repository) Create(ctx context.Context, supplier *Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *repository) FindAllByOwner(ctx context.Context, userID string) ([]Supplier, error) {
	var suppliers []Supplier
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Order("name ASC").
		Find(&suppliers).Error
	return suppliers, err
}

func (r *repository) FindByIDAndOwner(ctx context.Context, userID, id string) (*Supplier, error) {
	var supplier Supplier
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) FindByTaxIDOrEmail(ctx context.Context, userID, taxID, email string) (*Supplier, error) {
	var supplier Supplier
	err := r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Where("tax_id = ? OR email = ?", taxID, email).
		First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) Update(ctx context.Context, supplier *Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(owner.Scope(userID)).
		Delete(&Supplier{}, "id = ?", id).Error
}
