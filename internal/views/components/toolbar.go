package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the Calculate and Reset actions
type Toolbar struct {
	container       *fyne.Container
	calculateButton *widget.Button
	resetButton     *widget.Button

	calculateHandler func()
	resetHandler     func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.calculateButton = widget.NewButton("Calculate", nil)
	t.calculateButton.Importance = widget.HighImportance

	t.resetButton = widget.NewButton("Reset", nil)
	t.resetButton.Importance = widget.MediumImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.calculateButton,
		t.resetButton,
	)
}

func (t *Toolbar) setupEventHandlers() {
	t.calculateButton.OnTapped = func() {
		if t.calculateHandler != nil {
			t.calculateHandler()
		}
	}

	t.resetButton.OnTapped = func() {
		if t.resetHandler != nil {
			t.resetHandler()
		}
	}
}

// SetCalculateHandler sets the handler for the Calculate button
func (t *Toolbar) SetCalculateHandler(handler func()) {
	t.calculateHandler = handler
}

// SetResetHandler sets the handler for the Reset button
func (t *Toolbar) SetResetHandler(handler func()) {
	t.resetHandler = handler
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
