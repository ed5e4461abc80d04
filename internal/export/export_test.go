package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazuyasi/trpg-json/internal/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"sheets", FormatSheets},
		{"SHEETS", FormatSheets},
		{"google-sheets", FormatSheets},
		{"googlesheets", FormatSheets},
		{"udonarium", FormatUdonarium},
		{"Udonarium", FormatUdonarium},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("csv")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "csv")
}

func TestNew_CoversEveryFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatSheets, FormatUdonarium} {
		e, err := New(f)
		require.NoError(t, err, "format %q", f)
		assert.NotEmpty(t, e.Name(), "format %q", f)
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Format("csv"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidateDestination(t *testing.T) {
	assert.Error(t, ValidateDestination(FormatJSON, ""))
	assert.NoError(t, ValidateDestination(FormatJSON, "out.json"))

	assert.Error(t, ValidateDestination(FormatUdonarium, ""))
	assert.NoError(t, ValidateDestination(FormatUdonarium, "monsters.zip"))

	assert.Error(t, ValidateDestination(FormatSheets, ""))
	assert.Error(t, ValidateDestination(FormatSheets, "short-id"))
	assert.NoError(t, ValidateDestination(FormatSheets, "1BxiMVs0XRA5nFMKUVfIz487hJblLvZQvq_fHM9GjMhs"))
}
