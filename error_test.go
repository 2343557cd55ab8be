package errfactory

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	f := MustDefine(Definition{Code: "VALIDATION_ERROR", Message: "field {field} is invalid", Status: 422})
	err := f.New(Params{"field": "email"})

	require.Equal(t, "ValidationError: field email is invalid", err.Error())
}

func TestError_Error_DoesNotIncludeCause(t *testing.T) {
	err := testInternal.Wrap(stderrors.New("secret dsn"))
	require.NotContains(t, err.Error(), "secret dsn")
}

func TestError_NilReceiver(t *testing.T) {
	var err *Error
	require.Equal(t, "<nil>", err.Error())
	require.False(t, err.Is(testNotFound.New()))
}

func TestError_Unwrap_NonErrorCause(t *testing.T) {
	err := testInternal.New("custom", WithCause("not an error"))

	require.Nil(t, err.Unwrap())
	cause, ok := err.Cause()
	require.True(t, ok)
	require.Equal(t, "not an error", cause)
}

func TestError_Is(t *testing.T) {
	err := testNotFound.New()

	require.True(t, err.Is(testNotFound.New("other")))
	require.False(t, err.Is(testInternal.New()))
	require.False(t, err.Is(stderrors.New("plain")))
	require.False(t, err.Is((*Error)(nil)))
}

func TestError_As(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", testNotFound.New(Params{"resource": "user", "id": "9"}))

	var target *Error
	require.True(t, stderrors.As(wrapped, &target))
	require.Equal(t, "NOT_FOUND", target.Code())
	require.Equal(t, "user 9 not found", target.Message())
}

func TestError_Format(t *testing.T) {
	err := testInternal.New()

	require.Equal(t, "InternalServerError: internal server error", fmt.Sprintf("%v", err))
	require.Equal(t, "InternalServerError: internal server error", fmt.Sprintf("%s", err))
	require.Equal(t, `"InternalServerError: internal server error"`, fmt.Sprintf("%q", err))

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "InternalServerError: internal server error\n"))
	require.Contains(t, verbose, "TestError_Format")
	require.Contains(t, verbose, "error_test.go:")
}
