package errfactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{"fixed", "resource not found", nil},
		{"empty", "", nil},
		{"single", "user {id} not found", []string{"id"}},
		{"order of first use", "{b} then {a} then {b}", []string{"b", "a"}},
		{"adjacent", "{a}{b}", []string{"a", "b"}},
		{"empty braces ignored", "{} and {a}", []string{"a"}},
		{"whitespace ignored", "{ a } and {b}", []string{"b"}},
		{"nested braces", "{{a}}", []string{"a"}},
		{"punctuation allowed", "{user.id} and {user-name}", []string{"user.id", "user-name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Placeholders(tt.template))
		})
	}
}

func TestAnalyze(t *testing.T) {
	c, err := Analyze("{a} and {b}")
	require.NoError(t, err)
	require.True(t, c.Parameterized())
	require.Equal(t, []string{"a", "b"}, c.Placeholders)

	c, err = Analyze("fixed message")
	require.NoError(t, err)
	require.False(t, c.Parameterized())
	require.Empty(t, c.Placeholders)

	_, err = Analyze("{a} {cause}")
	require.ErrorIs(t, err, ErrReservedPlaceholder)
}

func TestContract_Check(t *testing.T) {
	c, err := Analyze("{a} and {b}")
	require.NoError(t, err)

	require.NoError(t, c.Check(Params{"a": "1", "b": "2"}))

	err = c.Check(Params{"a": "1"})
	require.ErrorIs(t, err, ErrParamsMismatch)
	require.Contains(t, err.Error(), "missing [b]")

	err = c.Check(Params{"a": "1", "b": "2", "z": "3", "c": "4"})
	require.ErrorIs(t, err, ErrParamsMismatch)
	require.Contains(t, err.Error(), "unexpected [c, z]")

	fixed, err := Analyze("fixed")
	require.NoError(t, err)
	require.NoError(t, fixed.Check(nil))
	require.ErrorIs(t, fixed.Check(Params{"a": "1"}), ErrParamsMismatch)
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   Params
		want     string
	}{
		{"all matched", "{a} and {b}", Params{"a": "hello", "b": "world"}, "hello and world"},
		{"unmatched left literal", "{a} and {b}", Params{"a": "hello"}, "hello and {b}"},
		{"repeated", "{a}-{a}", Params{"a": "x"}, "x-x"},
		{"nil params", "{a}", nil, "{a}"},
		{"extra keys ignored", "{a}", Params{"a": "1", "z": "2"}, "1"},
		{"empty value", "[{a}]", Params{"a": ""}, "[]"},
		{"values not rescanned", "{a}", Params{"a": "{b}", "b": "no"}, "{b}"},
		{"fixed template", "fixed", Params{"a": "1"}, "fixed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Interpolate(tt.template, tt.params))
		})
	}
}
