package invoiceerrors

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
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid client id",
		http.StatusBadRequest,
	)
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"invoice not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invoice status transition is not allowed",
		http.StatusUnprocessableEntity,
	)
	ErrInvoiceNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only draft invoices can be deleted",
		http.StatusUnprocessableEntity,
	)
)
