package codegen

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/pkg/apperr"
)

var codeRX = regexp.MustCompile(`^LP-[0-9A-F]{8}$`)

func TestGenerateSkipsTakenCodes(t *testing.T) {
	calls := 0
	code, err := Generate("LP", func(string) (bool, error) {
		calls++
		return calls < 3, nil
	})
	require.NoError(t, err)
	assert.Regexp(t, codeRX, code)
	assert.Equal(t, 3, calls)
}

func TestGenerateExhausted(t *testing.T) {
	_, err := Generate("LP", func(string) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestGeneratePropagatesLookupError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Generate("CC", func(string) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestAssign(t *testing.T) {
	used := map[string]bool{"WS-KENH01": true}
	taken := func(code string) (bool, error) { return used[code], nil }

	ve := apperr.NewValidation()
	code, err := Assign(ve, "code", "WS", nil, taken)
	require.NoError(t, err)
	assert.Regexp(t, `^WS-[0-9A-F]{8}$`, code)
	assert.True(t, ve.Empty())

	blank := "  "
	code, err = Assign(ve, "code", "WS", &blank, taken)
	require.NoError(t, err)
	assert.Regexp(t, `^WS-`, code)

	own := "WS-GIENG02"
	code, err = Assign(ve, "code", "WS", &own, taken)
	require.NoError(t, err)
	assert.Equal(t, own, code)
	assert.True(t, ve.Empty())

	dup := "WS-KENH01"
	_, err = Assign(ve, "code", "WS", &dup, taken)
	require.NoError(t, err)
	assert.Equal(t, []string{"The code has already been taken."}, ve.Fields["code"])
}
