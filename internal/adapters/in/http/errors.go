package http

import (
	"errors"
	"net/http"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/services"
	"lastmile/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes. Validation
// failures are the caller's fault, lifecycle and coverage refusals are
// unprocessable, and a failed existence check is an upstream problem.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, commands.ErrExistenceCheckFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, services.ErrOutOfCoverage),
		errors.Is(err, commands.ErrNoTariffConfigured),
		errors.Is(err, commands.ErrUnknownOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, err error) error {
	code := statusFor(err)
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
