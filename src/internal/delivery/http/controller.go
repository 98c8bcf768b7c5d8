package http

import (
	httpError "donation-service/src/pkg/http-error"
)

// parseError reports a body or query that could not be decoded.
func parseError(err error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = "invalid request: " + err.Error()
	return errObj
}
