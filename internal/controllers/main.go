package controllers

import (
	"errors"
	"fmt"
	"sync"

	"sanin-savara/internal/analysis"
	"sanin-savara/internal/logger"
	"sanin-savara/internal/models"
)

// InvalidInputMessage is shown whenever a field cannot be analyzed.
const InvalidInputMessage = "Please enter valid numbers for all fields"

// Analyzer runs the tooth size analysis over both arches.
type Analyzer interface {
	Analyze(maxillary, mandibular analysis.ToothWidthSet) (analysis.AnalysisReport, error)
}

// FormView is the part of the UI the controller drives.
type FormView interface {
	Form() models.MeasurementForm
	SetForm(form models.MeasurementForm)
	ShowReport(text string)
	ClearReport()
	ShowError(title, message string)
	UpdateStatus(status string)
	SetCalculateHandler(handler func())
	SetResetHandler(handler func())
}

// MainController binds the Calculate and Reset actions to the analyzer.
type MainController struct {
	analyzer Analyzer
	logger   logger.Logger

	mu         sync.RWMutex
	mainView   FormView
	lastReport *analysis.AnalysisReport
}

// NewMainController creates a new main controller
func NewMainController(analyzer Analyzer, log logger.Logger) *MainController {
	return &MainController{
		analyzer: analyzer,
		logger:   log,
	}
}

// SetMainView associates the view with this controller and fills it with
// the default widths.
func (mc *MainController) SetMainView(view FormView) {
	mc.mu.Lock()
	mc.mainView = view
	mc.mu.Unlock()

	view.SetCalculateHandler(func() {
		_, _ = mc.Calculate()
	})
	view.SetResetHandler(mc.Reset)
	view.SetForm(models.NewDefaultForm())
	view.UpdateStatus("Ready")
}

// Calculate analyzes the current form contents and displays the report.
func (mc *MainController) Calculate() (analysis.AnalysisReport, error) {
	view := mc.view()
	if view == nil {
		return analysis.AnalysisReport{}, fmt.Errorf("calculate: main view not set")
	}

	form := view.Form()
	report, err := mc.analyze(form)
	if err != nil {
		mc.handleError(view, err)
		return analysis.AnalysisReport{}, err
	}

	mc.mu.Lock()
	mc.lastReport = &report
	mc.mu.Unlock()

	mc.logger.Info("Controller", "analysis complete", map[string]interface{}{
		"maxillary_sum":    report.MaxillarySum,
		"mandibular_sum":   report.MandibularSum,
		"maxillary_class":  report.MaxillaryClass.String(),
		"mandibular_class": report.MandibularClass.String(),
		"comparison":       report.Comparison.Label.String(),
		"percent_diff":     report.Comparison.PercentDiff,
	})

	view.ShowReport(report.String())
	view.UpdateStatus(fmt.Sprintf("Analysis complete: %s", report.Comparison.Label))
	return report, nil
}

func (mc *MainController) analyze(form models.MeasurementForm) (analysis.AnalysisReport, error) {
	maxillary, mandibular, err := form.Parse()
	if err != nil {
		return analysis.AnalysisReport{}, fmt.Errorf("parse measurements: %w", err)
	}
	report, err := mc.analyzer.Analyze(maxillary, mandibular)
	if err != nil {
		return analysis.AnalysisReport{}, fmt.Errorf("analyze arches: %w", err)
	}
	return report, nil
}

// Reset restores the ideal widths and clears the result area.
func (mc *MainController) Reset() {
	view := mc.view()
	if view == nil {
		return
	}

	mc.mu.Lock()
	mc.lastReport = nil
	mc.mu.Unlock()

	view.SetForm(models.NewDefaultForm())
	view.ClearReport()
	view.UpdateStatus("Ready")

	mc.logger.Debug("Controller", "form reset to default widths", nil)
}

// LastReport returns the most recent successful report, if any.
func (mc *MainController) LastReport() (analysis.AnalysisReport, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if mc.lastReport == nil {
		return analysis.AnalysisReport{}, false
	}
	return *mc.lastReport, true
}

// Shutdown drops the view reference.
func (mc *MainController) Shutdown() {
	mc.mu.Lock()
	mc.mainView = nil
	mc.mu.Unlock()

	mc.logger.Debug("Controller", "controller shut down", nil)
}

func (mc *MainController) view() FormView {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.mainView
}

func (mc *MainController) handleError(view FormView, err error) {
	mc.logger.Error("Controller", err, nil)

	var inputErr *analysis.InvalidInputError
	if errors.As(err, &inputErr) {
		view.ShowError("Error", InvalidInputMessage)
		view.UpdateStatus("Invalid input")
		return
	}

	view.ShowError("Error", err.Error())
	view.UpdateStatus("Analysis failed")
}
