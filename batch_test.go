package errfactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByCode(t *testing.T) {
	families, err := ByCode(
		Definition{Code: "NOT_FOUND", Message: "not found", Status: 404},
		Definition{Code: "UNAUTHORIZED", Message: "unauthorized", Status: 401},
	)

	require.NoError(t, err)
	require.Len(t, families, 2)
	require.Equal(t, "NotFound", families["NOT_FOUND"].Name())
	require.Equal(t, 401, families["UNAUTHORIZED"].Status())
}

func TestByCode_DuplicatesOverwriteLeftToRight(t *testing.T) {
	families, err := ByCode(
		Definition{Code: "NOT_FOUND", Message: "first", Status: 404},
		Definition{Code: "BAD_REQUEST", Message: "bad", Status: 400},
		Definition{Code: "NOT_FOUND", Message: "second", Status: 410},
	)

	require.NoError(t, err)
	require.Len(t, families, 2)
	require.Equal(t, "second", families["NOT_FOUND"].Template())
	require.Equal(t, 410, families["NOT_FOUND"].Status())
}

func TestByName(t *testing.T) {
	families, err := ByName(
		Definition{Code: "NOT_FOUND", Message: "not found", Status: 404},
		Definition{Code: "BAD_REQUEST", Message: "bad request", Status: 400},
	)

	require.NoError(t, err)
	require.Len(t, families, 2)
	require.Equal(t, "NOT_FOUND", families["NotFound"].Code())
	require.Equal(t, "BAD_REQUEST", families["BadRequest"].Code())
}

func TestByName_DuplicatesOverwriteLeftToRight(t *testing.T) {
	families, err := ByName(
		Definition{Code: "NOT_FOUND", Message: "first", Status: 404},
		Definition{Code: "NOT__FOUND", Message: "second", Status: 410},
	)

	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "NOT__FOUND", families["NotFound"].Code())
}

func TestBatch_InvalidDefinitionAborts(t *testing.T) {
	families, err := ByCode(
		Definition{Code: "OK", Message: "ok"},
		Definition{Code: "BAD", Message: "{cause}"},
	)
	require.ErrorIs(t, err, ErrReservedPlaceholder)
	require.Nil(t, families)

	families, err = ByName(Definition{Code: "bad", Message: "x"})
	require.ErrorIs(t, err, ErrInvalidCode)
	require.Nil(t, families)
}

func TestBatch_Empty(t *testing.T) {
	families, err := ByCode()
	require.NoError(t, err)
	require.Empty(t, families)
}
