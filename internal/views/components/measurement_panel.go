package components

import (
	"fmt"

	"sanin-savara/internal/analysis"
	"sanin-savara/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MeasurementPanel holds one entry per tooth and arch.
type MeasurementPanel struct {
	container  *fyne.Container
	maxillary  [analysis.ToothCount]*widget.Entry
	mandibular [analysis.ToothCount]*widget.Entry
}

// NewMeasurementPanel creates the fourteen measurement entries
func NewMeasurementPanel() *MeasurementPanel {
	mp := &MeasurementPanel{}
	mp.createComponents()
	mp.buildLayout()
	return mp
}

func (mp *MeasurementPanel) createComponents() {
	for _, tooth := range analysis.Teeth() {
		mp.maxillary[tooth] = widget.NewEntry()
		mp.mandibular[tooth] = widget.NewEntry()
	}
}

func (mp *MeasurementPanel) buildLayout() {
	maxForm := widget.NewForm()
	mandForm := widget.NewForm()

	for _, tooth := range analysis.Teeth() {
		maxForm.Append(fieldLabel(analysis.Maxillary, tooth), mp.maxillary[tooth])
		mandForm.Append(fieldLabel(analysis.Mandibular, tooth), mp.mandibular[tooth])
	}

	mp.container = container.NewVBox(
		widget.NewLabelWithStyle("Tooth Measurements (in mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Maxillary Teeth", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		maxForm,
		widget.NewLabelWithStyle("Mandibular Teeth", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		mandForm,
	)
}

func fieldLabel(arch analysis.Arch, tooth analysis.Tooth) string {
	return fmt.Sprintf("%s (%s):", tooth, tooth.FDI(arch))
}

// Form snapshots the current entry texts.
func (mp *MeasurementPanel) Form() models.MeasurementForm {
	var form models.MeasurementForm
	for _, tooth := range analysis.Teeth() {
		form.Maxillary[tooth] = mp.maxillary[tooth].Text
		form.Mandibular[tooth] = mp.mandibular[tooth].Text
	}
	return form
}

// SetForm overwrites every entry.
func (mp *MeasurementPanel) SetForm(form models.MeasurementForm) {
	for _, tooth := range analysis.Teeth() {
		mp.maxillary[tooth].SetText(form.Maxillary[tooth])
		mp.mandibular[tooth].SetText(form.Mandibular[tooth])
	}
}

// GetContainer returns the panel container
func (mp *MeasurementPanel) GetContainer() *fyne.Container {
	return mp.container
}
