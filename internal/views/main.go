package views

import (
	"sanin-savara/internal/analysis"
	"sanin-savara/internal/models"
	"sanin-savara/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the calculator form plus the reference guide tab
type MainView struct {
	window      fyne.Window
	content     fyne.CanvasObject
	measurement *components.MeasurementPanel
	toolbar     *components.Toolbar
	statusBar   *components.StatusBar
	results     *widget.Label
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.measurement = components.NewMeasurementPanel()
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()

	mv.results = widget.NewLabel("")
	mv.results.Wrapping = fyne.TextWrapWord
}

func (mv *MainView) buildLayout() {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Sanin-Savara Tooth Size Analysis", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Calculate tooth size characteristics based on mesiodistal widths", fyne.TextAlignCenter, fyne.TextStyle{}),
	)

	calculator := container.NewVScroll(container.NewVBox(
		header,
		mv.measurement.GetContainer(),
		mv.toolbar.GetContainer(),
		widget.NewCard("Analysis Results", "", mv.results),
	))

	guide := widget.NewLabel(analysis.ReferenceGuide())
	guide.Wrapping = fyne.TextWrapWord

	tabs := container.NewAppTabs(
		container.NewTabItem("Analysis Calculator", calculator),
		container.NewTabItem("Information", container.NewVScroll(guide)),
	)

	mv.content = container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, tabs)
	mv.window.SetContent(mv.content)
}

// Form returns a snapshot of the measurement entries
func (mv *MainView) Form() models.MeasurementForm {
	return mv.measurement.Form()
}

// SetForm fills the measurement entries
func (mv *MainView) SetForm(form models.MeasurementForm) {
	mv.measurement.SetForm(form)
}

// ShowReport displays the rendered analysis report
func (mv *MainView) ShowReport(text string) {
	mv.results.SetText(text)
}

// ClearReport empties the result area
func (mv *MainView) ClearReport() {
	mv.results.SetText("")
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// UpdateStatus updates the status bar
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetCalculateHandler sets the handler for calculate requests
func (mv *MainView) SetCalculateHandler(handler func()) {
	mv.toolbar.SetCalculateHandler(handler)
}

// SetResetHandler sets the handler for reset requests
func (mv *MainView) SetResetHandler(handler func()) {
	mv.toolbar.SetResetHandler(handler)
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}
