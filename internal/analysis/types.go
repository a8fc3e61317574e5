package analysis

import "fmt"

// ToothCount is the number of tooth classes measured per arch side.
const ToothCount = 7

// ToothWidthSet holds one-side mesiodistal widths in millimeters, ordered
// from central incisor to second molar.
type ToothWidthSet [ToothCount]float64

// Tooth identifies a position within a ToothWidthSet.
type Tooth int

const (
	CentralIncisor Tooth = iota
	LateralIncisor
	Canine
	FirstPremolar
	SecondPremolar
	FirstMolar
	SecondMolar

	// NoTooth marks errors that concern a whole arch rather than one tooth.
	NoTooth Tooth = -1
)

var toothNames = [ToothCount]string{
	"Central Incisor",
	"Lateral Incisor",
	"Canine",
	"First Premolar",
	"Second Premolar",
	"First Molar",
	"Second Molar",
}

// Teeth returns all tooth classes in measurement order.
func Teeth() []Tooth {
	return []Tooth{CentralIncisor, LateralIncisor, Canine, FirstPremolar, SecondPremolar, FirstMolar, SecondMolar}
}

func (t Tooth) String() string {
	if t < 0 || int(t) >= ToothCount {
		return fmt.Sprintf("Tooth(%d)", int(t))
	}
	return toothNames[t]
}

// FDI returns the FDI numbers of both teeth of this class in the given
// arch, e.g. "11, 21" for the maxillary central incisor.
func (t Tooth) FDI(arch Arch) string {
	q := 1
	if arch == Mandibular {
		q = 3
	}
	pos := int(t) + 1
	return fmt.Sprintf("%d%d, %d%d", q, pos, q+1, pos)
}

// Arch is the dental arch a width set belongs to.
type Arch int

const (
	Maxillary Arch = iota
	Mandibular

	// UnknownArch marks errors raised before a width set is tied to an arch.
	UnknownArch Arch = -1
)

func (a Arch) String() string {
	switch a {
	case Maxillary:
		return "Maxillary"
	case Mandibular:
		return "Mandibular"
	default:
		return fmt.Sprintf("Arch(%d)", int(a))
	}
}

// ArchClassification is the size category of a bilateral arch sum.
type ArchClassification int

const (
	VerySmall ArchClassification = iota
	Small
	Average
	Large
	VeryLarge
)

func (c ArchClassification) String() string {
	switch c {
	case VerySmall:
		return "VerySmall"
	case Small:
		return "Small"
	case Average:
		return "Average"
	case Large:
		return "Large"
	case VeryLarge:
		return "VeryLarge"
	default:
		return fmt.Sprintf("ArchClassification(%d)", int(c))
	}
}

// Describe renders the interpretation sentence for an arch of this size.
func (c ArchClassification) Describe(arch Arch) string {
	switch c {
	case VerySmall:
		return fmt.Sprintf("%s teeth are very small (sum <60mm)", arch)
	case Small:
		return fmt.Sprintf("%s teeth are small (sum 60-90mm)", arch)
	case Average:
		return fmt.Sprintf("%s teeth are average-sized (sum 90-140mm)", arch)
	case Large:
		return fmt.Sprintf("%s teeth are large (sum 140-170mm)", arch)
	default:
		return fmt.Sprintf("%s teeth are very large (sum >170mm)", arch)
	}
}

// ComparisonLabel tells which arch, if any, carries the excess tooth material.
type ComparisonLabel int

const (
	Proportional ComparisonLabel = iota
	MaxillaryExcess
	MandibularExcess
)

func (l ComparisonLabel) String() string {
	switch l {
	case Proportional:
		return "Proportional"
	case MaxillaryExcess:
		return "MaxillaryExcess"
	case MandibularExcess:
		return "MandibularExcess"
	default:
		return fmt.Sprintf("ComparisonLabel(%d)", int(l))
	}
}

// ArchComparisonResult describes how two arch sums relate.
type ArchComparisonResult struct {
	Difference  float64
	PercentDiff float64
	Label       ComparisonLabel
}

// Describe renders the comparison sentence used in the report.
func (r ArchComparisonResult) Describe() string {
	switch r.Label {
	case MaxillaryExcess:
		return fmt.Sprintf("Maxillary teeth are larger than mandibular by %.1fmm (%.1f%%)", r.Difference, r.PercentDiff)
	case MandibularExcess:
		return fmt.Sprintf("Mandibular teeth are larger than maxillary by %.1fmm (%.1f%%)", r.Difference, r.PercentDiff)
	default:
		return fmt.Sprintf("Maxillary and mandibular teeth are well proportioned (<%g%% difference)", ProportionalThreshold)
	}
}
