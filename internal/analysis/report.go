package analysis

import (
	"fmt"
	"io"
	"strings"
)

// AnalysisReport is the outcome of one analysis call.
type AnalysisReport struct {
	MaxillarySum    float64
	MandibularSum   float64
	MaxillaryClass  ArchClassification
	MandibularClass ArchClassification
	Comparison      ArchComparisonResult
	Notes           []string
}

// Interpretation returns the per-arch and comparison sentences in report
// order.
func (r AnalysisReport) Interpretation() []string {
	return []string{
		r.MaxillaryClass.Describe(Maxillary),
		r.MandibularClass.Describe(Mandibular),
		r.Comparison.Describe(),
	}
}

// Render writes the report in its fixed text layout.
func (r AnalysisReport) Render(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "MAXILLARY TEETH TOTAL WIDTH: %.1f mm\n", r.MaxillarySum)
	fmt.Fprintf(&b, "MANDIBULAR TEETH TOTAL WIDTH: %.1f mm\n", r.MandibularSum)
	fmt.Fprintf(&b, "ARCH SIZE DIFFERENCE: %.1f mm (%.1f%%)\n",
		r.Comparison.Difference, r.Comparison.PercentDiff)

	b.WriteString("\nINTERPRETATION:\n")
	for _, line := range r.Interpretation() {
		fmt.Fprintf(&b, "• %s\n", line)
	}

	b.WriteString("\nCLINICAL NOTES:\n")
	for _, note := range r.Notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r AnalysisReport) String() string {
	var b strings.Builder
	_ = r.Render(&b)
	return b.String()
}
