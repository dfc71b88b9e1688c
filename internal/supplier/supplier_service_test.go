package supplier_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Diana-hub4/Demo-dian-back/internal/supplier"
	suppliererrors "github.com/Diana-hub4/Demo-dian-back/internal/supplier/errors"
)

type fakeSupplierRepository struct {
	withTxFn             func(tx *sql.Tx) supplier.Repository
	createFn             func(ctx context.Context, s *supplier.Supplier) error
	findAllByOwnerFn     func(ctx context.Context, userID string) ([]supplier.Supplier, error)
	findByIDAndOwnerFn   func(ctx context.Context, userID, id string) (*supplier.Supplier, error)
	findByTaxIDOrEmailFn func(ctx context.Context, userID, taxID, email string) (*supplier.Supplier, error)
	updateFn             func(ctx context.Context, s *supplier.Supplier) error
	deleteFn             func(ctx context.Context, userID, id string) error
}

func (f *fakeSupplierRepository) WithTx(tx *sql.Tx) supplier.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSupplierRepository) FindAllByOwner(ctx context.Context, userID string) ([]supplier.Supplier, error) {
	if f.findAllByOwnerFn != nil {
		return f.findAllByOwnerFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeSupplierRepository) FindByIDAndOwner(ctx context.Context, userID, id string) (*supplier.Supplier, error) {
	if f.findByIDAndOwnerFn != nil {
		return f.findByIDAndOwnerFn(ctx, userID, id)
	}
	return nil, nil
}

func (f *fakeSupplierRepository) FindByTaxIDOrEmail(ctx context.Context, userID, taxID, email string) (*supplier.Supplier, error) {
	if f.findByTaxIDOrEmailFn != nil {
		return f.findByTaxIDOrEmailFn(ctx, userID, taxID, email)
	}
	return nil, nil
}

func (f *fakeSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeSupplierRepository) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, id)
	}
	return nil
}

func validSupplierRequest() supplier.CreateSupplierRequest {
	return supplier.CreateSupplierRequest{
		Name:                 "Parqueadero El Centro",
		PersonType:           "Natural",
		TaxID:                "800987654-1",
		DocumentType:         "id_card",
		IdentificationNumber: "800987654",
		BusinessReason:       "parqueadero",
		Email:                "contacto@parqueadero.co",
		ContactNumber:        "3001234567",
		Address:              "Calle 10 # 5-23",
		City:                 "Bogota",
		RegimeType:           supplier.RegimeSimplified,
	}
}

func TestSupplierService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeSupplierRepository{}
		var created *supplier.Supplier
		repo.createFn = func(ctx context.Context, s *supplier.Supplier) error {
			created = s
			return nil
		}
		svc := supplier.NewService(db, repo)

		resp, err := svc.Create(ctx, userID, validSupplierRequest())

		assert.NoError(t, err)
		assert.Equal(t, supplier.StatusActive, created.Status)
		assert.Equal(t, supplier.RegimeSimplified, resp.RegimeType)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate tax id or email", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo := &fakeSupplierRepository{
			findByTaxIDOrEmailFn: func(ctx context.Context, uid, taxID, email string) (*supplier.Supplier, error) {
				assert.Equal(t, "800987654-1", taxID)
				assert.Equal(t, "contacto@parqueadero.co", email)
				return &supplier.Supplier{ID: uuid.New()}, nil
			},
		}
		svc := supplier.NewService(db, repo)

		_, err = svc.Create(ctx, userID, validSupplierRequest())

		assert.ErrorIs(t, err, suppliererrors.ErrDuplicateSupplier)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}

func TestSupplierService_Delete_Unknown(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	svc := supplier.NewService(db, &fakeSupplierRepository{})

	err = svc.Delete(context.Background(), uuid.New().String(), uuid.New().String())

	assert.ErrorIs(t, err, suppliererrors.ErrSupplierNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
