package payroll_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Diana-hub4/Demo-dian-back/internal/payroll"
	payrollerrors "github.com/Diana-hub4/Demo-dian-back/internal/payroll/errors"
)

type fakePayrollRepository struct {
	withTxFn                  func(tx *sql.Tx) payroll.Repository
	createFn                  func(ctx context.Context, p *payroll.Payslip) error
	findByIDFn                func(ctx context.Context, id string) (*payroll.Payslip, error)
	findByEmployeeAndPeriodFn func(ctx context.Context, employeeID, period string) (*payroll.Payslip, error)
	updateFn                  func(ctx context.Context, p *payroll.Payslip) error
	deleteFn                  func(ctx context.Context, id string) error
	listByEmployeeFn          func(ctx context.Context, employeeID string) ([]payroll.Payslip, error)
	listByPeriodFromFn        func(ctx context.Context, period string) ([]payroll.Payslip, error)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Create(ctx context.Context, p *payroll.Payslip) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakePayrollRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*payroll.Payslip, error) {
	if f.findByEmployeeAndPeriodFn != nil {
		return f.findByEmployeeAndPeriodFn(ctx, employeeID, period)
	}
	return nil, nil
}

func (f *fakePayrollRepository) Update(ctx context.Context, p *payroll.Payslip) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakePayrollRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	if f.listByEmployeeFn != nil {
		return f.listByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakePayrollRepository) ListByPeriodFrom(ctx context.Context, period string) ([]payroll.Payslip, error) {
	if f.listByPeriodFromFn != nil {
		return f.listByPeriodFromFn(ctx, period)
	}
	return nil, nil
}

type fakeRenderer struct {
	renderFn func(p *payroll.Payslip) (string, error)
}

func (f *fakeRenderer) Render(p *payroll.Payslip) (string, error) {
	if f.renderFn != nil {
		return f.renderFn(p)
	}
	return "/files/nominas/test.pdf", nil
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service payroll.Service
	repo    *fakePayrollRepository
}

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakePayrollRepository{}
	svc := payroll.NewService(db, repo, &fakeRenderer{}, payroll.WithClock(func() time.Time {
		return testNow
	}))

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validCreateRequest() payroll.CreatePayslipRequest {
	return payroll.CreatePayslipRequest{
		ContractType:       payroll.ContractIndefinido,
		Period:             "2024-06",
		EmployeeID:         "EMP-001",
		EmployeeName:       "Laura Gomez",
		Email:              "laura@example.com",
		BaseSalary:         1600000,
		TransportAllowance: 140606,
		Deductions:         64000,
		DaysWorked:         30,
		ExtraHours:         10,
		LateMinutes:        30,
	}
}

func TestPayrollService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("success persists derived values", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		var created *payroll.Payslip
		deps.repo.createFn = func(ctx context.Context, p *payroll.Payslip) error {
			created = p
			return nil
		}
		deps.repo.findByEmployeeAndPeriodFn = func(ctx context.Context, employeeID, period string) (*payroll.Payslip, error) {
			assert.Equal(t, "EMP-001", employeeID)
			assert.Equal(t, "2024-06", period)
			return nil, nil
		}

		resp, err := deps.service.Create(ctx, userID, validCreateRequest())

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.InDelta(t, 125000, created.ExtraPay, 0.0001)
		assert.InDelta(t, 50, created.LatePenalty, 0.0001)
		assert.InDelta(t, 1865606, created.TotalIncome, 0.0001)
		assert.InDelta(t, 64050, created.TotalDeductions, 0.0001)
		assert.InDelta(t, 1801556, created.NetTotal, 0.0001)
		assert.Equal(t, userID, resp.IDUser)
		assert.False(t, resp.IsPaid)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee and period is rejected", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByEmployeeAndPeriodFn = func(ctx context.Context, employeeID, period string) (*payroll.Payslip, error) {
			return &payroll.Payslip{ID: uuid.New()}, nil
		}

		_, err := deps.service.Create(ctx, userID, validCreateRequest())

		assert.ErrorIs(t, err, payrollerrors.ErrDuplicatePayslip)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid user id", func(t *testing.T) {
		_, err := deps.service.Create(ctx, "not-a-uuid", validCreateRequest())

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidUserID)
	})

	t.Run("invalid period format", func(t *testing.T) {
		req := validCreateRequest()
		req.Period = "junio-2024"

		_, err := deps.service.Create(ctx, userID, req)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat)
	})

	t.Run("repository create failure rolls back", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByEmployeeAndPeriodFn = func(ctx context.Context, employeeID, period string) (*payroll.Payslip, error) {
			return nil, nil
		}
		deps.repo.createFn = func(ctx context.Context, p *payroll.Payslip) error {
			return errors.New("insert failed")
		}

		_, err := deps.service.Create(ctx, userID, validCreateRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func storedPayslip() *payroll.Payslip {
	derived := payroll.ComputeDerivedValues(payroll.ComputeInputs{
		BaseSalary:         1600000,
		ExtraHours:         10,
		LateMinutes:        30,
		TransportAllowance: 140606,
		Deductions:         64000,
	})

	return &payroll.Payslip{
		ID:                 uuid.New(),
		IDUser:             uuid.New(),
		ContractType:       payroll.ContractIndefinido,
		Period:             "2024-06",
		EmployeeID:         "EMP-001",
		EmployeeName:       "Laura Gomez",
		Email:              "laura@example.com",
		BaseSalary:         1600000,
		TransportAllowance: 140606,
		Deductions:         64000,
		DaysWorked:         30,
		ExtraHours:         10,
		LateMinutes:        30,
		ExtraPay:           derived.ExtraPay,
		LatePenalty:        derived.LatePenalty,
		TotalIncome:        derived.TotalIncome,
		TotalDeductions:    derived.TotalDeductions,
		NetTotal:           derived.NetTotal,
	}
}

func TestPayrollService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown payslip", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, uuid.New().String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
	})

	t.Run("concurrent identical reads share one query", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		stored := storedPayslip()
		var queries int32
		release := make(chan struct{})
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			atomic.AddInt32(&queries, 1)
			<-release
			return stored, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := deps.service.GetByID(ctx, stored.ID.String())
				assert.NoError(t, err)
				assert.Equal(t, stored.ID.String(), resp.ID)
			}()
		}

		// Let every goroutine join the in-flight lookup before it returns.
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.EqualValues(t, 1, queries)
	})
}

func TestPayrollService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("patching a computation input recomputes all totals", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		stored := storedPayslip()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return stored, nil
		}
		var saved *payroll.Payslip
		deps.repo.updateFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = p
			return nil
		}

		newSalary := 3200000.0
		resp, err := deps.service.Update(ctx, stored.ID.String(), payroll.UpdatePayslipRequest{
			BaseSalary: &newSalary,
		})

		assert.NoError(t, err)
		assert.NotNil(t, saved)
		// hourly rate doubles, so extra pay and penalty double too
		assert.InDelta(t, 250000, saved.ExtraPay, 0.0001)
		assert.InDelta(t, 100, saved.LatePenalty, 0.0001)
		assert.InDelta(t, 3590606, saved.TotalIncome, 0.0001)
		assert.InDelta(t, 64100, saved.TotalDeductions, 0.0001)
		assert.InDelta(t, 3526506, saved.NetTotal, 0.0001)
		assert.InDelta(t, 3200000, resp.BaseSalary, 0.0001)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("patching a non computation field keeps totals", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		stored := storedPayslip()
		wantNet := stored.NetTotal
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return stored, nil
		}
		var saved *payroll.Payslip
		deps.repo.updateFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = p
			return nil
		}

		newName := "Laura Gomez Diaz"
		_, err := deps.service.Update(ctx, stored.ID.String(), payroll.UpdatePayslipRequest{
			EmployeeName: &newName,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Laura Gomez Diaz", saved.EmployeeName)
		assert.InDelta(t, wantNet, saved.NetTotal, 0.0001)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown payslip", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return nil, nil
		}

		_, err := deps.service.Update(ctx, uuid.New().String(), payroll.UpdatePayslipRequest{})

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("existing payslip is deleted", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		stored := storedPayslip()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return stored, nil
		}
		deleteCalled := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleteCalled = true
			assert.Equal(t, stored.ID.String(), id)
			return nil
		}

		deleted, err := deps.service.Delete(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.True(t, deleteCalled)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing payslip reports false without error", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return nil, nil
		}
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			t.Fatal("delete must not be called for a missing payslip")
			return nil
		}

		deleted, err := deps.service.Delete(ctx, uuid.New().String())

		assert.NoError(t, err)
		assert.False(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_MarkAsPaid(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("sets paid flag and payment date", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		stored := storedPayslip()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return stored, nil
		}
		var saved *payroll.Payslip
		deps.repo.updateFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = p
			return nil
		}

		resp, err := deps.service.MarkAsPaid(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.True(t, saved.IsPaid)
		assert.Equal(t, testNow, *saved.PaymentDate)
		assert.True(t, resp.IsPaid)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repeated calls refresh the payment date", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		earlier := testNow.Add(-48 * time.Hour)
		stored := storedPayslip()
		stored.IsPaid = true
		stored.PaymentDate = &earlier

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return stored, nil
		}
		var saved *payroll.Payslip
		deps.repo.updateFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = p
			return nil
		}

		_, err := deps.service.MarkAsPaid(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.True(t, saved.IsPaid)
		assert.Equal(t, testNow, *saved.PaymentDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown payslip", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.Payslip, error) {
			return nil, nil
		}

		_, err := deps.service.MarkAsPaid(ctx, uuid.New().String())

		assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_ListLastMonths(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("cutoff is months times thirty days truncated to the month", func(t *testing.T) {
		var gotCutoff string
		deps.repo.listByPeriodFromFn = func(ctx context.Context, period string) ([]payroll.Payslip, error) {
			gotCutoff = period
			return []payroll.Payslip{*storedPayslip()}, nil
		}

		// 2024-06-15 minus 360 days lands in June 2023.
		resp, err := deps.service.ListLastMonths(ctx, 12)

		assert.NoError(t, err)
		assert.Equal(t, "2023-06", gotCutoff)
		assert.Len(t, resp, 1)
	})

	t.Run("single month window", func(t *testing.T) {
		var gotCutoff string
		deps.repo.listByPeriodFromFn = func(ctx context.Context, period string) ([]payroll.Payslip, error) {
			gotCutoff = period
			return nil, nil
		}

		_, err := deps.service.ListLastMonths(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "2024-05", gotCutoff)
	})

	t.Run("non positive months is rejected", func(t *testing.T) {
		_, err := deps.service.ListLastMonths(ctx, 0)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonthsFilter)
	})
}

func TestPayrollService_ListByEmployee(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	deps.repo.listByEmployeeFn = func(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
		assert.Equal(t, "EMP-001", employeeID)
		return []payroll.Payslip{*storedPayslip()}, nil
	}

	resp, err := deps.service.ListByEmployee(ctx, "EMP-001")

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "EMP-001", resp[0].EmployeeID)
}

func TestPayrollService_GeneratePayslip(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the rendered locator", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		stored := storedPayslip()
		repo := &fakePayrollRepository{
			findByIDFn: func(ctx context.Context, id string) (*payroll.Payslip, error) {
				return stored, nil
			},
		}
		var saved *payroll.Payslip
		repo.updateFn = func(ctx context.Context, p *payroll.Payslip) error {
			saved = p
			return nil
		}
		renderer := &fakeRenderer{
			renderFn: func(p *payroll.Payslip) (string, error) {
				return "/files/nominas/nomina_EMP-001_2024-06.pdf", nil
			},
		}
		svc := payroll.NewService(db, repo, renderer, payroll.WithClock(func() time.Time {
			return testNow
		}))

		expectTx(t, sqlMock, true)

		resp, err := svc.GeneratePayslip(ctx, stored.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "/files/nominas/nomina_EMP-001_2024-06.pdf", *saved.PDFURL)
		assert.Equal(t, testNow, *saved.PDFGeneratedAt)
		assert.NotNil(t, resp.PDFURL)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("render failure leaves the payslip untouched", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		stored := storedPayslip()
		repo := &fakePayrollRepository{
			findByIDFn: func(ctx context.Context, id string) (*payroll.Payslip, error) {
				return stored, nil
			},
			updateFn: func(ctx context.Context, p *payroll.Payslip) error {
				t.Fatal("update must not be called when rendering fails")
				return nil
			},
		}
		renderer := &fakeRenderer{
			renderFn: func(p *payroll.Payslip) (string, error) {
				return "", errors.New("disk full")
			},
		}
		svc := payroll.NewService(db, repo, renderer)

		expectTx(t, sqlMock, false)

		_, err = svc.GeneratePayslip(ctx, stored.ID.String())

		assert.Error(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("no renderer configured", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := payroll.NewService(db, &fakePayrollRepository{}, nil)

		_, err = svc.GeneratePayslip(ctx, uuid.New().String())

		assert.ErrorIs(t, err, payrollerrors.ErrRendererUnavailable)
	})
}
