package analysis

import (
	"fmt"
	"strings"
)

var measurementInstructions = []string{
	"Measure the mesiodistal width of each tooth at its greatest contour",
	"Use a digital caliper or Boley gauge for accurate measurements",
	"Record to the nearest 0.1 mm",
	"Measure both left and right teeth and use the average if symmetrical",
}

var clinicalSignificance = []string{
	"Helps identify tooth-size discrepancies affecting occlusion",
	"Guides treatment planning (interproximal reduction, build-ups)",
	"Useful for diagnosing crowding or spacing issues, Class II or Class III malocclusions, anterior open bites or deep bites",
}

var commonCauses = []string{
	"Genetic variations in tooth size",
	"Peg-shaped or malformed teeth",
	"Missing or supernumerary teeth",
	"Enamel hypoplasia or other developmental anomalies",
}

// ReferenceGuide returns the measurement and interpretation guide shown next
// to the calculator. Ideal values and category bounds are taken from the
// constants the analysis itself uses.
func ReferenceGuide() string {
	var b strings.Builder

	b.WriteString("SANIN-SAVARA TOOTH SIZE ANALYSIS INFORMATION\n\n")

	b.WriteString("Measurement Instructions:\n")
	for i, line := range measurementInstructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	b.WriteString("\nParameters:\n")
	for _, arch := range []Arch{Maxillary, Mandibular} {
		fmt.Fprintf(&b, "- %s Teeth: %s (%s) to %s (%s)\n", arch,
			CentralIncisor, CentralIncisor.FDI(arch),
			SecondMolar, SecondMolar.FDI(arch))
	}
	b.WriteString("- Measurements should be made on study casts or directly in mouth\n")

	b.WriteString("\nIdeal Values (based on Sanin-Savara studies):\n")
	writeIdealValues(&b, Maxillary, DefaultMaxillaryWidths())
	writeIdealValues(&b, Mandibular, DefaultMandibularWidths())

	b.WriteString("\nClassification Criteria (bilateral sum of all teeth in arch):\n")
	fmt.Fprintf(&b, "- %s: <%g mm\n", VerySmall, SmallLowerBound)
	fmt.Fprintf(&b, "- %s: %g-%g mm\n", Small, SmallLowerBound, AverageLowerBound)
	fmt.Fprintf(&b, "- %s: %g-%g mm\n", Average, AverageLowerBound, AverageUpperBound)
	fmt.Fprintf(&b, "- %s: %g-%g mm\n", Large, AverageUpperBound, LargeUpperBound)
	fmt.Fprintf(&b, "- %s: >%g mm\n", VeryLarge, LargeUpperBound)

	b.WriteString("\nArch Comparison:\n")
	b.WriteString("- Maxillary > Mandibular: May indicate maxillary excess\n")
	b.WriteString("- Mandibular > Maxillary: May indicate mandibular excess\n")
	fmt.Fprintf(&b, "- Proportional: Within %g%% of each other\n", ProportionalThreshold)

	b.WriteString("\nClinical Significance:\n")
	for _, line := range clinicalSignificance {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\nCommon Causes of Discrepancies:\n")
	for _, line := range commonCauses {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	return b.String()
}

func writeIdealValues(b *strings.Builder, arch Arch, widths ToothWidthSet) {
	fmt.Fprintf(b, "%s Teeth (average mesiodistal widths in mm):\n", arch)
	for _, tooth := range Teeth() {
		fmt.Fprintf(b, "- %s: %.1f mm\n", tooth, widths[tooth])
	}
}
