package httpError

import (
	"errors"
	"net/http"
)

// CommonError is what every usecase puts into utils.Result.Error.
type CommonError struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: http.StatusBadRequest, Message: "Bad Request"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: http.StatusNotFound, Message: "Not Found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: http.StatusConflict, Message: "Conflict"}
}

// NewUnprocessableEntity is used for business-rule failures.
func NewUnprocessableEntity() *CommonError {
	return &CommonError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable Entity"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
}

// NewServiceUnavailable marks integration failures the client may retry.
func NewServiceUnavailable() *CommonError {
	return &CommonError{Code: http.StatusServiceUnavailable, Message: "Service Unavailable", Retryable: true}
}

// As extracts a *CommonError from err, falling back to a 500.
func As(err error) *CommonError {
	var ce *CommonError
	if errors.As(err, &ce) {
		return ce
	}
	errObj := NewInternalServerError()
	if err != nil {
		errObj.Message = err.Error()
	}
	return errObj
}
