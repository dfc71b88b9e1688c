package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/singleflight"

	payrollerrors "github.com/Diana-hub4/Demo-dian-back/internal/payroll/errors"
	"github.com/Diana-hub4/Demo-dian-back/internal/events"
	"github.com/Diana-hub4/Demo-dian-back/internal/messaging/kafka"
	"github.com/Diana-hub4/Demo-dian-back/internal/shared/contextutil"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreatePayslipRequest) (PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	Update(ctx context.Context, id string, req UpdatePayslipRequest) (PayslipResponse, error)
	Delete(ctx context.Context, id string) (bool, error)
	MarkAsPaid(ctx context.Context, id string) (PayslipResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	ListLastMonths(ctx context.Context, months int) ([]PayslipResponse, error)
	GeneratePayslip(ctx context.Context, id string) (PayslipResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	renderer Renderer
	outbox   kafka.OutboxRepository
	sf       *singleflight.Group
	now      func() time.Time
}

type Option func(*service)

// WithClock overrides the time source, used by tests that need a fixed
// reference "now" for period filtering and payment dates.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

func WithOutbox(outbox kafka.OutboxRepository) Option {
	return func(s *service) {
		s.outbox = outbox
	}
}

func NewService(db *sql.DB, repo Repository, renderer Renderer, opts ...Option) Service {
	s := &service{
		db:       db,
		repo:     repo,
		renderer: renderer,
		sf:       &singleflight.Group{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, renderer Renderer, outbox kafka.OutboxRepository) Service {
	return NewService(db, repo, renderer, WithOutbox(outbox))
}

func (s *service) Create(
	ctx context.Context,
	userID string,
	req CreatePayslipRequest,
) (PayslipResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidUserID
	}
	if err := validatePeriod(req.Period); err != nil {
		return PayslipResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Application-level duplicate check; the unique index on
	// (employee_id, period) is the backstop for concurrent creates.
	existing, err := qtx.FindByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err != nil {
		return PayslipResponse{}, err
	}
	if existing != nil {
		return PayslipResponse{}, payrollerrors.ErrDuplicatePayslip
	}

	derived := ComputeDerivedValues(ComputeInputs{
		BaseSalary:         req.BaseSalary,
		ExtraHours:         req.ExtraHours,
		LateMinutes:        req.LateMinutes,
		TransportAllowance: req.TransportAllowance,
		VacationPay:        req.VacationPay,
		Deductions:         req.Deductions,
		Contributions:      req.Contributions,
	})

	payslip := &Payslip{
		ID:           uuid.New(),
		IDUser:       userUUID,
		ContractType: req.ContractType,
		Period:       req.Period,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Email:        req.Email,
		Cargo:        req.Cargo,

		BaseSalary:         req.BaseSalary,
		TransportAllowance: req.TransportAllowance,
		VacationPay:        req.VacationPay,
		Deductions:         req.Deductions,
		Contributions:      req.Contributions,

		HealthContribution:    req.HealthContribution,
		PensionContribution:   req.PensionContribution,
		SolidarityPensionFund: req.SolidarityPensionFund,

		DaysWorked:      req.DaysWorked,
		NightHours:      req.NightHours,
		ExtraDayHours:   req.ExtraDayHours,
		ExtraNightHours: req.ExtraNightHours,
		SundayHours:     req.SundayHours,
		HolidayHours:    req.HolidayHours,
		ExtraHours:      derived.ExtraHours,
		LateMinutes:     derived.LateMinutes,

		ExtraPay:        derived.ExtraPay,
		LatePenalty:     derived.LatePenalty,
		TotalIncome:     derived.TotalIncome,
		TotalDeductions: derived.TotalDeductions,
		NetTotal:        derived.NetTotal,
	}

	if err := qtx.Create(ctx, payslip); err != nil {
		if isUniqueViolation(err) {
			return PayslipResponse{}, payrollerrors.ErrDuplicatePayslip
		}
		return PayslipResponse{}, err
	}

	if s.outbox != nil {
		if err := s.queuePayslipRequested(ctx, tx, payslip, userID); err != nil {
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	return mapToResponse(*payslip), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	// Concurrent reads of the same payslip share one query.
	v, err, _ := s.sf.Do("payslip:"+id, func() (interface{}, error) {
		payslip, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if payslip == nil {
			return nil, payrollerrors.ErrPayslipNotFound
		}

		return mapToResponse(*payslip), nil
	})
	if err != nil {
		return PayslipResponse{}, err
	}

	return v.(PayslipResponse), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdatePayslipRequest,
) (PayslipResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	if payslip == nil {
		return PayslipResponse{}, payrollerrors.ErrPayslipNotFound
	}

	recompute := req.touchesComputation()

	applyPatch(payslip, req)

	if recompute {
		// Merged view: stored values already overlaid by the patch.
		derived := ComputeDerivedValues(computeInputsFromPayslip(payslip))
		payslip.ExtraPay = derived.ExtraPay
		payslip.LatePenalty = derived.LatePenalty
		payslip.TotalIncome = derived.TotalIncome
		payslip.TotalDeductions = derived.TotalDeductions
		payslip.NetTotal = derived.NetTotal
	}

	if err := qtx.Update(ctx, payslip); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	return mapToResponse(*payslip), nil
}

func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if payslip == nil {
		// Deleting a missing payslip is not an error, by contract.
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

func (s *service) MarkAsPaid(ctx context.Context, id string) (PayslipResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	if payslip == nil {
		return PayslipResponse{}, payrollerrors.ErrPayslipNotFound
	}

	// Repeated calls refresh payment_date; there is no already-paid guard.
	paidAt := s.now()
	payslip.IsPaid = true
	payslip.PaymentDate = &paidAt

	if err := qtx.Update(ctx, payslip); err != nil {
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	return mapToResponse(*payslip), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	payslips, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payslips), nil
}

func (s *service) ListLastMonths(ctx context.Context, months int) ([]PayslipResponse, error) {
	if months <= 0 {
		return nil, payrollerrors.ErrInvalidMonthsFilter
	}

	// Months approximated as 30-day blocks, truncated to YYYY-MM. Good
	// enough for reporting; lexicographic compare works on the zero-padded
	// period tokens.
	cutoff := s.now().AddDate(0, 0, -months*30).Format("2006-01")

	payslips, err := s.repo.ListByPeriodFrom(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payslips), nil
}

func (s *service) GeneratePayslip(ctx context.Context, id string) (PayslipResponse, error) {
	if s.renderer == nil {
		return PayslipResponse{}, payrollerrors.ErrRendererUnavailable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	if payslip == nil {
		return PayslipResponse{}, payrollerrors.ErrPayslipNotFound
	}

	// Rendering is best-effort and never touches the financial fields; a
	// failure here leaves the committed payslip exactly as it was.
	locator, err := s.renderer.Render(payslip)
	if err != nil {
		return PayslipResponse{}, err
	}

	generatedAt := s.now()
	payslip.PDFURL = &locator
	payslip.PDFGeneratedAt = &generatedAt

	if err := qtx.Update(ctx, payslip); err != nil {
		return PayslipResponse{}, err
	}

	if s.outbox != nil {
		if err := s.queuePayslipGenerated(ctx, tx, payslip, locator); err != nil {
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, err
	}

	return mapToResponse(*payslip), nil
}

func (s *service) queuePayslipRequested(ctx context.Context, tx *sql.Tx, payslip *Payslip, userID string) error {
	payload, err := json.Marshal(events.PayslipRequestedEvent{
		EventType:   "payslip_requested",
		PayslipID:   payslip.ID.String(),
		RequestedBy: userID,
		OccurredAt:  s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "nomina",
		AggregateID:   payslip.ID.String(),
		EventType:     "payslip_requested",
		Topic:         events.PayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) queuePayslipGenerated(ctx context.Context, tx *sql.Tx, payslip *Payslip, locator string) error {
	payload, err := json.Marshal(events.PayslipGeneratedEvent{
		EventType:     "payslip_generated",
		PayslipID:     payslip.ID.String(),
		EmployeeEmail: payslip.Email,
		EmployeeName:  payslip.EmployeeName,
		Period:        payslip.Period,
		PDFURL:        locator,
		OccurredAt:    s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "nomina",
		AggregateID:   payslip.ID.String(),
		EventType:     "payslip_generated",
		Topic:         events.PayslipGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func applyPatch(p *Payslip, req UpdatePayslipRequest) {
	if req.ContractType != nil {
		p.ContractType = *req.ContractType
	}
	if req.EmployeeName != nil {
		p.EmployeeName = *req.EmployeeName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Cargo != nil {
		p.Cargo = req.Cargo
	}
	if req.BaseSalary != nil {
		p.BaseSalary = *req.BaseSalary
	}
	if req.TransportAllowance != nil {
		p.TransportAllowance = *req.TransportAllowance
	}
	if req.VacationPay != nil {
		p.VacationPay = *req.VacationPay
	}
	if req.Deductions != nil {
		p.Deductions = *req.Deductions
	}
	if req.Contributions != nil {
		p.Contributions = *req.Contributions
	}
	if req.HealthContribution != nil {
		p.HealthContribution = *req.HealthContribution
	}
	if req.PensionContribution != nil {
		p.PensionContribution = *req.PensionContribution
	}
	if req.SolidarityPensionFund != nil {
		p.SolidarityPensionFund = *req.SolidarityPensionFund
	}
	if req.DaysWorked != nil {
		p.DaysWorked = *req.DaysWorked
	}
	if req.NightHours != nil {
		p.NightHours = *req.NightHours
	}
	if req.ExtraDayHours != nil {
		p.ExtraDayHours = *req.ExtraDayHours
	}
	if req.ExtraNightHours != nil {
		p.ExtraNightHours = *req.ExtraNightHours
	}
	if req.SundayHours != nil {
		p.SundayHours = *req.SundayHours
	}
	if req.HolidayHours != nil {
		p.HolidayHours = *req.HolidayHours
	}
	if req.ExtraHours != nil {
		p.ExtraHours = *req.ExtraHours
	}
	if req.LateMinutes != nil {
		p.LateMinutes = *req.LateMinutes
	}
}

func validatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return payrollerrors.ErrInvalidPeriodFormat
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
