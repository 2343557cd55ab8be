package errfactory

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	resp := ToJSON(testNotFound.New(Params{"resource": "user", "id": "42"}))

	require.NotNil(t, resp)
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "NotFound", resp.Name)
	require.Equal(t, "user 42 not found", resp.Message)
	require.Equal(t, 404, resp.Status)
	require.Equal(t, Params{"resource": "user", "id": "42"}, resp.Params)
}

func TestToJSON_WrappedError(t *testing.T) {
	resp := ToJSON(fmt.Errorf("handler: %w", testInternal.New()))

	require.Equal(t, "INTERNAL_SERVER_ERROR", resp.Code)
	require.Equal(t, "internal server error", resp.Message)
	require.Nil(t, resp.Params)
}

func TestToJSON_ForeignCodedError(t *testing.T) {
	resp := ToJSON(&foreignError{code: "RATE_LIMITED", status: 429})

	require.Equal(t, "RATE_LIMITED", resp.Code)
	require.Equal(t, "RateLimited", resp.Name)
	require.Equal(t, "RATE_LIMITED", resp.Message)
	require.Equal(t, 429, resp.Status)
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("something went wrong"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "Unknown", resp.Name)
	require.Equal(t, "something went wrong", resp.Message)
	require.Zero(t, resp.Status)
}

func TestToJSON_NilError(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := testNotFound.Wrap(stderrors.New("sql: no rows"), Params{"resource": "user", "id": "42"})

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.JSONEq(t,
		`{"code":"NOT_FOUND","name":"NotFound","message":"user 42 not found","status":404,"params":{"id":"42","resource":"user"}}`,
		string(data))
	require.NotContains(t, string(data), "sql: no rows")
}

func TestMarshalJSON_OmitsEmptyParams(t *testing.T) {
	data, err := json.Marshal(testInternal.New())
	require.NoError(t, err)
	require.JSONEq(t,
		`{"code":"INTERNAL_SERVER_ERROR","name":"InternalServerError","message":"internal server error","status":500}`,
		string(data))
}
