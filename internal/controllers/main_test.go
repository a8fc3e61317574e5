package controllers

import (
	"errors"
	"testing"

	"sanin-savara/internal/analysis"
	"sanin-savara/internal/logger"
	"sanin-savara/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	form       models.MeasurementForm
	report     string
	errTitle   string
	errMessage string
	status     string
	onCalc     func()
	onReset    func()
}

func (v *fakeView) Form() models.MeasurementForm { return v.form }
func (v *fakeView) SetForm(form models.MeasurementForm) { v.form = form }
func (v *fakeView) ShowReport(text string) { v.report = text }
func (v *fakeView) ClearReport() { v.report = "" }
func (v *fakeView) UpdateStatus(status string) { v.status = status }
func (v *fakeView) SetCalculateHandler(handler func()) { v.onCalc = handler }
func (v *fakeView) SetResetHandler(handler func()) { v.onReset = handler }
func (v *fakeView) ShowError(title, message string) {
	v.errTitle = title
	v.errMessage = message
}

type failingAnalyzer struct{ err error }

func (f failingAnalyzer) Analyze(_, _ analysis.ToothWidthSet) (analysis.AnalysisReport, error) {
	return analysis.AnalysisReport{}, f.err
}

func newController(t *testing.T) (*MainController, *fakeView) {
	t.Helper()
	mc := NewMainController(analysis.NewArchAnalyzer(), logger.Nop())
	view := &fakeView{}
	mc.SetMainView(view)
	return mc, view
}

func TestSetMainViewPopulatesDefaults(t *testing.T) {
	_, view := newController(t)

	assert.Equal(t, models.NewDefaultForm(), view.form)
	assert.Equal(t, "Ready", view.status)
	assert.NotNil(t, view.onCalc)
	assert.NotNil(t, view.onReset)
}

func TestCalculateShowsReport(t *testing.T) {
	mc, view := newController(t)

	view.onCalc()

	assert.Contains(t, view.report, "MAXILLARY TEETH TOTAL WIDTH: 111.8 mm")
	assert.Contains(t, view.report, "Maxillary teeth are larger than mandibular by 6.8mm (6.3%)")
	assert.Empty(t, view.errMessage)
	assert.Equal(t, "Analysis complete: MaxillaryExcess", view.status)

	report, ok := mc.LastReport()
	require.True(t, ok)
	assert.Equal(t, analysis.MaxillaryExcess, report.Comparison.Label)
}

func TestCalculateInvalidInput(t *testing.T) {
	mc, view := newController(t)
	view.report = "previous"
	view.form = view.form.WithField(analysis.Mandibular, analysis.Canine, "six")

	_, err := mc.Calculate()
	require.ErrorIs(t, err, analysis.ErrInvalidInput)

	assert.Equal(t, InvalidInputMessage, view.errMessage)
	assert.Equal(t, "Invalid input", view.status)
	assert.Equal(t, "previous", view.report)

	_, ok := mc.LastReport()
	assert.False(t, ok)
}

func TestCalculateZeroSums(t *testing.T) {
	mc, view := newController(t)
	view.form = models.NewForm(analysis.ToothWidthSet{}, analysis.ToothWidthSet{})

	_, err := mc.Calculate()
	require.ErrorIs(t, err, analysis.ErrInvalidInput)
	assert.Equal(t, InvalidInputMessage, view.errMessage)
}

func TestCalculateUnexpectedError(t *testing.T) {
	mc := NewMainController(failingAnalyzer{err: errors.New("analyzer offline")}, logger.Nop())
	view := &fakeView{}
	mc.SetMainView(view)

	_, err := mc.Calculate()
	require.Error(t, err)
	assert.Equal(t, "analyze arches: analyzer offline", view.errMessage)
	assert.Equal(t, "Analysis failed", view.status)
}

func TestResetRestoresDefaults(t *testing.T) {
	mc, view := newController(t)
	view.onCalc()
	view.form = view.form.WithField(analysis.Maxillary, analysis.FirstMolar, "12.0")

	view.onReset()

	assert.Equal(t, models.NewDefaultForm(), view.form)
	assert.Empty(t, view.report)
	assert.Equal(t, "Ready", view.status)

	_, ok := mc.LastReport()
	assert.False(t, ok)
}

func TestCalculateWithoutView(t *testing.T) {
	mc := NewMainController(analysis.NewArchAnalyzer(), logger.Nop())

	_, err := mc.Calculate()
	assert.Error(t, err)
	assert.NotPanics(t, mc.Reset)
}

func TestShutdownDetachesView(t *testing.T) {
	mc, _ := newController(t)
	mc.Shutdown()

	_, err := mc.Calculate()
	assert.Error(t, err)
}
