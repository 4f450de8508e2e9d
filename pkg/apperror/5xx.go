package apperror

import "net/http"

const (
	InternalServerCode = "500001"
	DispatchFailedCode = "500002"
)

// 500 Internal Server Error
func ErrInternalServer(err error) Error {
	return NewError(err, http.StatusInternalServerError, InternalServerCode, "Internal Server Error")
}

func ErrDispatchFailed(err error) Error {
	return NewError(err, http.StatusInternalServerError, DispatchFailedCode, "A listener failed")
}
