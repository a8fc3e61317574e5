package models

import (
	"testing"

	"sanin-savara/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultForm(t *testing.T) {
	form := NewDefaultForm()

	assert.Equal(t, [analysis.ToothCount]string{"8.5", "6.5", "7.6", "7.0", "6.8", "10.0", "9.5"}, form.Maxillary)
	assert.Equal(t, [analysis.ToothCount]string{"5.0", "5.5", "6.5", "7.0", "7.0", "11.0", "10.5"}, form.Mandibular)
}

func TestParseDefaultForm(t *testing.T) {
	maxillary, mandibular, err := NewDefaultForm().Parse()
	require.NoError(t, err)

	assert.Equal(t, analysis.DefaultMaxillaryWidths(), maxillary)
	assert.Equal(t, analysis.DefaultMandibularWidths(), mandibular)
}

func TestParseInvalidField(t *testing.T) {
	tests := []struct {
		name   string
		arch   analysis.Arch
		tooth  analysis.Tooth
		value  string
		reason string
	}{
		{"letters", analysis.Maxillary, analysis.Canine, "abc", "not a number"},
		{"empty", analysis.Mandibular, analysis.FirstMolar, "  ", "value is empty"},
		{"nan", analysis.Mandibular, analysis.CentralIncisor, "NaN", "width must be a finite number"},
		{"infinity", analysis.Maxillary, analysis.SecondMolar, "+Inf", "width must be a finite number"},
		{"comma decimal", analysis.Maxillary, analysis.LateralIncisor, "6,5", "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewDefaultForm().WithField(tt.arch, tt.tooth, tt.value)

			_, _, err := form.Parse()
			require.ErrorIs(t, err, analysis.ErrInvalidInput)

			var inputErr *analysis.InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.arch, inputErr.Arch)
			assert.Equal(t, tt.tooth, inputErr.Tooth)
			assert.Equal(t, tt.value, inputErr.Value)
			assert.Equal(t, tt.reason, inputErr.Reason)
		})
	}
}

func TestParseAcceptsUnusualButFiniteValues(t *testing.T) {
	form := NewDefaultForm().
		WithField(analysis.Maxillary, analysis.Canine, " -3.25 ").
		WithField(analysis.Mandibular, analysis.SecondMolar, "0")

	maxillary, mandibular, err := form.Parse()
	require.NoError(t, err)
	assert.Equal(t, -3.25, maxillary[analysis.Canine])
	assert.Equal(t, 0.0, mandibular[analysis.SecondMolar])
}

func TestWithFieldLeavesOriginalUntouched(t *testing.T) {
	form := NewDefaultForm()
	changed := form.WithField(analysis.Maxillary, analysis.CentralIncisor, "9.0")

	assert.Equal(t, "8.5", form.Field(analysis.Maxillary, analysis.CentralIncisor))
	assert.Equal(t, "9.0", changed.Field(analysis.Maxillary, analysis.CentralIncisor))
}

func TestFormatWidth(t *testing.T) {
	assert.Equal(t, "10.0", FormatWidth(10))
	assert.Equal(t, "6.8", FormatWidth(6.8))
	assert.Equal(t, "-0.5", FormatWidth(-0.5))
}
