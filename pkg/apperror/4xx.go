package apperror

import (
	"errors"
	"net/http"

	"github.com/Sententiaregum/flux-container/domain"
)

const (
	BindingCode            = "400001"
	ValidationCode         = "400002"
	MissingListenerIDCode  = "404003"
	EntityNotFoundCode     = "404006"
	TokenNotRegisteredCode = "422001"
	CircularReferenceCode  = "422002"
	NoRootDependencyCode   = "422003"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

// 404 Not Found
func ErrMissingListenerID(err error) Error {
	return NewError(err, http.StatusNotFound, MissingListenerIDCode, "No such listener")
}

func ErrEntityNotFound(err error) Error {
	return NewError(err, http.StatusNotFound, EntityNotFoundCode, "Not found")
}

// 422 Unprocessable Entity
func ErrTokenNotRegistered(err error) Error {
	return NewError(err, http.StatusUnprocessableEntity, TokenNotRegisteredCode, "Dependency token is not registered")
}

func ErrCircularReference(err error) Error {
	return NewError(err, http.StatusUnprocessableEntity, CircularReferenceCode, "Circular listener dependency")
}

func ErrNoRootDependency(err error) Error {
	return NewError(err, http.StatusUnprocessableEntity, NoRootDependencyCode, "No root dependency")
}

// FromDispatch maps the error of a Dispatch call.
func FromDispatch(err error) Error {
	if !domain.IsResolutionError(err) {
		return ErrDispatchFailed(err)
	}

	switch {
	case errors.Is(err, domain.ErrTokenNotRegistered):
		return ErrTokenNotRegistered(err)
	case errors.Is(err, domain.ErrCircularReference):
		return ErrCircularReference(err)
	default:
		return ErrNoRootDependency(err)
	}
}
