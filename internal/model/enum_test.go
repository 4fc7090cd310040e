package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptStatus(t *testing.T) {
	for _, code := range []string{"T1", "T2", "T3"} {
		status, err := ParseOptStatus(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(status))
	}
}

func TestParseOptStatus_Unknown(t *testing.T) {
	for _, code := range []string{"T9", "t1", "", "T11"} {
		_, err := ParseOptStatus(code)
		require.Error(t, err, "code %q", code)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestParseAccessLevel(t *testing.T) {
	for _, code := range []string{"Admin", "Manager", "Staff", "Viewer"} {
		level, err := ParseAccessLevel(code)
		require.NoError(t, err)
		assert.Equal(t, code, string(level))
	}
}

func TestParseAccessLevel_Unknown(t *testing.T) {
	for _, code := range []string{"Owner", "admin", ""} {
		_, err := ParseAccessLevel(code)
		require.Error(t, err, "code %q", code)
		assert.ErrorIs(t, err, ErrValidation)
	}
}
