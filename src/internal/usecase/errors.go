package usecase

import (
	"context"
	"errors"
	"fmt"

	"donation-service/src/internal/repository"
	httpError "donation-service/src/pkg/http-error"
	"donation-service/src/pkg/validation"
)

func validationError(err error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
	errObj.Fields = validation.Fields(err)
	return errObj
}

func notFound(message, redirect string) *httpError.CommonError {
	errObj := httpError.NewNotFound()
	errObj.Message = message
	errObj.Redirect = redirect
	return errObj
}

func unprocessable(message string) *httpError.CommonError {
	errObj := httpError.NewUnprocessableEntity()
	errObj.Message = message
	return errObj
}

// storeError maps a repository failure to the response taxonomy. A cancelled
// request is reported as unavailable so the client can retry.
func storeError(err error, notFoundMessage, redirect string) *httpError.CommonError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound(notFoundMessage, redirect)
	case errors.Is(err, repository.ErrInsufficientPoints):
		return unprocessable("No tienes puntos suficientes para canjear esta recompensa")
	case errors.Is(err, repository.ErrRewardInactive):
		return unprocessable("La recompensa no está disponible")
	case errors.Is(err, repository.ErrRewardSoldOut):
		return unprocessable("La recompensa está agotada")
	case errors.Is(err, repository.ErrRewardAssigned):
		errObj := httpError.NewConflict()
		errObj.Message = "No se puede eliminar: ya asignada a usuarios"
		return errObj
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		errObj := httpError.NewServiceUnavailable()
		errObj.Message = "La solicitud fue cancelada, intenta nuevamente"
		return errObj
	}
	errObj := httpError.NewInternalServerError()
	errObj.Message = err.Error()
	return errObj
}
