package utils

import (
	"encoding/json"
	"strconv"

	httpError "donation-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type Result struct {
	Data  interface{}
	Error error
}

// BaseResponse is the {success, message, data} envelope every endpoint returns.
type BaseResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      interface{}       `json:"data,omitempty"`
	Code      int               `json:"code"`
	Fields    map[string]string `json:"fields,omitempty"`
	Redirect  string            `json:"redirect,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(BaseResponse{
		Success: true,
		Message: message,
		Data:    data,
		Code:    code,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	var errObj *httpError.CommonError
	if fe, ok := err.(*fiber.Error); ok {
		errObj = &httpError.CommonError{Code: fe.Code, Message: fe.Message}
	} else {
		errObj = httpError.As(err)
	}
	return ctx.Status(errObj.Code).JSON(BaseResponse{
		Success:   false,
		Message:   errObj.Message,
		Code:      errObj.Code,
		Fields:    errObj.Fields,
		Redirect:  errObj.Redirect,
		Retryable: errObj.Retryable,
	})
}

func ConvertString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func ConvertInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	}
	return 0
}
