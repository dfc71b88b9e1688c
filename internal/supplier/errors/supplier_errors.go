package suppliererrors

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
	ErrSupplierNotFound = apperror.New(
		apperror.CodeNotFound,
		"supplier not found",
		http.StatusNotFound,
	)
	ErrDuplicateSupplier = apperror.New(
		apperror.CodeConflict,
		"a supplier with this tax id or email is already registered",
		http.StatusConflict,
	)
)
