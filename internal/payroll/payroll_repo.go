package payroll

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payslip *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payslip, error)
	Update(ctx context.Context, payslip *Payslip) error
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	ListByPeriodFrom(ctx context.Context, period string) ([]Payslip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Create(payslip).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		First(&payslip, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("period = ?", period).
		First(&payslip).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *repository) Update(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Save(payslip).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Payslip{}, "id = ?", id).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("period DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) ListByPeriodFrom(ctx context.Context, period string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Where("period >= ?", period).
		Order("period DESC").
		Find(&payslips).Error
	return payslips, err
}
