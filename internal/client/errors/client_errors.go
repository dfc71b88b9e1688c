package clienterrors

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
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"client not found",
		http.StatusNotFound,
	)
	ErrDuplicateClient = apperror.New(
		apperror.CodeConflict,
		"a client with this tax id is already registered",
		http.StatusConflict,
	)
)
