package errors

import "github.com/expenzo/expenzo-backend/constant"

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Detail carries the raw upstream error string for diagnostics. Empty for
// errors that originate in business rules.
func (c CustomError) Detail() string {
	return c.detail
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorDetail wraps an upstream failure, keeping its message
// available for the response body.
func SetCustomErrorDetail(errorType constant.ErrorType, err error) CustomError {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}
