package payrollerrors

import (
	"net/http"

	"github.com/Diana-hub4/Demo-dian-back/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrDuplicatePayslip = apperror.New(
		apperror.CodeConflict,
		"a payslip already exists for this employee in the given period",
		http.StatusConflict,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrInvalidMonthsFilter = apperror.New(
		apperror.CodeInvalidInput,
		"months must be a positive number",
		http.StatusBadRequest,
	)
	ErrRendererUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"payslip renderer is not configured",
		http.StatusServiceUnavailable,
	)
)
