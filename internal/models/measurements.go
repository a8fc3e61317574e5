package models

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"sanin-savara/internal/analysis"
)

// MeasurementForm is an immutable snapshot of the fourteen text fields the
// user filled in. The view owns the editable state; controllers only ever
// see copies.
type MeasurementForm struct {
	Maxillary  [analysis.ToothCount]string
	Mandibular [analysis.ToothCount]string
}

// NewDefaultForm returns a form populated with the ideal widths.
func NewDefaultForm() MeasurementForm {
	return NewForm(analysis.DefaultMaxillaryWidths(), analysis.DefaultMandibularWidths())
}

// NewForm formats both width sets with one decimal place.
func NewForm(maxillary, mandibular analysis.ToothWidthSet) MeasurementForm {
	var form MeasurementForm
	for i := range maxillary {
		form.Maxillary[i] = FormatWidth(maxillary[i])
		form.Mandibular[i] = FormatWidth(mandibular[i])
	}
	return form
}

// Field returns the raw text of one field.
func (f MeasurementForm) Field(arch analysis.Arch, tooth analysis.Tooth) string {
	if arch == analysis.Mandibular {
		return f.Mandibular[tooth]
	}
	return f.Maxillary[tooth]
}

// WithField returns a copy of the form with one field replaced.
func (f MeasurementForm) WithField(arch analysis.Arch, tooth analysis.Tooth, value string) MeasurementForm {
	if arch == analysis.Mandibular {
		f.Mandibular[tooth] = value
	} else {
		f.Maxillary[tooth] = value
	}
	return f
}

// Parse converts every field to a width. The first field that is empty,
// non-numeric or non-finite yields an *analysis.InvalidInputError.
func (f MeasurementForm) Parse() (maxillary, mandibular analysis.ToothWidthSet, err error) {
	maxillary, err = parseArch(analysis.Maxillary, f.Maxillary)
	if err != nil {
		return maxillary, mandibular, err
	}
	mandibular, err = parseArch(analysis.Mandibular, f.Mandibular)
	return maxillary, mandibular, err
}

func parseArch(arch analysis.Arch, fields [analysis.ToothCount]string) (analysis.ToothWidthSet, error) {
	var widths analysis.ToothWidthSet
	for i, raw := range fields {
		w, err := ParseWidth(raw)
		if err != nil {
			return analysis.ToothWidthSet{}, &analysis.InvalidInputError{
				Arch:   arch,
				Tooth:  analysis.Tooth(i),
				Value:  raw,
				Reason: err.Error(),
			}
		}
		widths[i] = w
	}
	return widths, nil
}

var (
	errEmptyWidth     = errors.New("value is empty")
	errNotNumber      = errors.New("not a number")
	errNonFiniteWidth = errors.New("width must be a finite number")
)

// ParseWidth parses a single width entered in millimeters.
func ParseWidth(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errEmptyWidth
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotNumber
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, errNonFiniteWidth
	}
	return w, nil
}

// FormatWidth renders a width the way the form displays it.
func FormatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', 1, 64)
}
