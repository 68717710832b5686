package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the JSON body of every error response.
type Response struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// ToHTTPResponse converts err into a status and body. Internal causes are not
// exposed to the client.
func ToHTTPResponse(err error) (int, Response) {
	var appErr *AppError
	if As(err, &appErr) {
		status := ToHTTPStatus(appErr.Code())
		msg := appErr.Message()
		if status >= http.StatusInternalServerError {
			msg = http.StatusText(status)
		}
		return status, Response{Error: msg, Code: appErr.Code(), Fields: appErr.Fields()}
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok || echoErr.Code >= http.StatusInternalServerError {
			msg = http.StatusText(echoErr.Code)
		}
		return echoErr.Code, Response{Error: msg, Code: httpStatusToCode(echoErr.Code)}
	}

	return http.StatusInternalServerError, Response{
		Error: http.StatusText(http.StatusInternalServerError),
		Code:  ErrInternal,
	}
}

// FromHTTPError converts an echo HTTP error into an AppError.
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, echoErr.Internal)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}
