package pqrsferrors

import (
	"net/http"

	"github.com/Diana-hub4/Demo-dian-back/internal/shared/apperror"
)

var ErrPQRSFNotFound = apperror.New(
	apperror.CodeNotFound,
	"pqrsf request not found",
	http.StatusNotFound,
)
