package http

import (
	"errors"
	"net/http"

	"deliveryhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP status codes.
// Unrecognized errors become 500 with a generic message so internal details
// never leak to clients.
func respondError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})
	}

	var forbidden *errs.ForbiddenError
	if errors.As(err, &forbidden) {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: forbidden.Error(),
		})
	}

	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: conflict.Error(),
		})
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
