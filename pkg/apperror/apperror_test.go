package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Sententiaregum/flux-container/domain"
	"github.com/Sententiaregum/flux-container/pkg/apperror"
	"github.com/stretchr/testify/assert"
)

func TestFromDispatch(t *testing.T) {
	tests := []struct {
		err      error
		httpCode int
		code     string
	}{
		{domain.TokenNotRegisteredError{Token: "UNKNOWN"}, http.StatusUnprocessableEntity, apperror.TokenNotRegisteredCode},
		{domain.CircularReferenceError{Token: "ID_1"}, http.StatusUnprocessableEntity, apperror.CircularReferenceCode},
		{domain.ErrNoRootDependency, http.StatusUnprocessableEntity, apperror.NoRootDependencyCode},
		{errors.New("listener exploded"), http.StatusInternalServerError, apperror.DispatchFailedCode},
		{fmt.Errorf("journal: %w", domain.ErrNoRootDependency), http.StatusUnprocessableEntity, apperror.NoRootDependencyCode},
		{fmt.Errorf("refresh store: %w", errors.New("missing")), http.StatusInternalServerError, apperror.DispatchFailedCode},
	}

	for _, tt := range tests {
		got := apperror.FromDispatch(tt.err)
		assert.Equal(t, tt.httpCode, got.HTTPCode)
		assert.Equal(t, tt.code, got.ErrorCode)
		assert.ErrorIs(t, got, tt.err)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Invalid request: bad json", apperror.ErrInvalidRequest(errors.New("bad json")).Error())
	assert.Equal(t, "No such listener", apperror.ErrMissingListenerID(nil).Error())
}
