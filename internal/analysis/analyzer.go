// Package analysis implements the Sanin-Savara tooth size analysis: bilateral
// arch sums, a size category per arch and a comparison between the arches.
package analysis

import (
	"fmt"
	"math"
)

// Arch sum category boundaries in millimeters.
const (
	SmallLowerBound       = 60.0
	AverageLowerBound     = 90.0
	AverageUpperBound     = 140.0
	LargeUpperBound       = 170.0
	ProportionalThreshold = 2.0
)

// ClinicalNotes is the advisory text appended to every report.
var ClinicalNotes = []string{
	"Differences >5% may indicate significant tooth-size discrepancy",
	"Consider individual tooth sizes and positions in treatment planning",
}

// ArchAnalyzer runs the analysis. It holds no state; the zero value is ready
// to use and safe for concurrent callers.
type ArchAnalyzer struct{}

func NewArchAnalyzer() *ArchAnalyzer {
	return &ArchAnalyzer{}
}

// ComputeArchSum doubles the one-side sum of widths to approximate the full
// arch.
func (a *ArchAnalyzer) ComputeArchSum(widths ToothWidthSet) (float64, error) {
	return computeArchSum(UnknownArch, widths)
}

func computeArchSum(arch Arch, widths ToothWidthSet) (float64, error) {
	var sum float64
	for i, w := range widths {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, &InvalidInputError{
				Arch:   arch,
				Tooth:  Tooth(i),
				Reason: "width must be a finite number",
			}
		}
		sum += w
	}
	return sum * 2, nil
}

// ClassifyArch maps a bilateral sum onto its size category. 90 and 140 are
// Average, 170 is Large.
func (a *ArchAnalyzer) ClassifyArch(sum float64) ArchClassification {
	switch {
	case sum < SmallLowerBound:
		return VerySmall
	case sum < AverageLowerBound:
		return Small
	case sum <= AverageUpperBound:
		return Average
	case sum <= LargeUpperBound:
		return Large
	default:
		return VeryLarge
	}
}

// CompareArches measures the difference between the two arch sums relative
// to their mean.
func (a *ArchAnalyzer) CompareArches(maxSum, mandSum float64) (ArchComparisonResult, error) {
	if !isFinite(maxSum) || !isFinite(mandSum) {
		return ArchComparisonResult{}, &InvalidInputError{
			Arch:   UnknownArch,
			Tooth:  NoTooth,
			Reason: fmt.Sprintf("arch sums must be finite (maxillary %v, mandibular %v)", maxSum, mandSum),
		}
	}
	if maxSum+mandSum == 0 {
		return ArchComparisonResult{}, &InvalidInputError{
			Arch:   UnknownArch,
			Tooth:  NoTooth,
			Reason: "arch sums add up to zero, percentage difference is undefined",
		}
	}

	difference := math.Abs(maxSum - mandSum)
	percentDiff := difference / ((maxSum + mandSum) / 2) * 100

	result := ArchComparisonResult{
		Difference:  difference,
		PercentDiff: percentDiff,
	}
	switch {
	case percentDiff < ProportionalThreshold:
		result.Label = Proportional
	case maxSum > mandSum:
		result.Label = MaxillaryExcess
	default:
		result.Label = MandibularExcess
	}
	return result, nil
}

// Analyze runs the full pipeline over both arches.
func (a *ArchAnalyzer) Analyze(maxillary, mandibular ToothWidthSet) (AnalysisReport, error) {
	maxSum, err := computeArchSum(Maxillary, maxillary)
	if err != nil {
		return AnalysisReport{}, err
	}
	mandSum, err := computeArchSum(Mandibular, mandibular)
	if err != nil {
		return AnalysisReport{}, err
	}

	comparison, err := a.CompareArches(maxSum, mandSum)
	if err != nil {
		return AnalysisReport{}, err
	}

	notes := make([]string, len(ClinicalNotes))
	copy(notes, ClinicalNotes)

	return AnalysisReport{
		MaxillarySum:    maxSum,
		MandibularSum:   mandSum,
		MaxillaryClass:  a.ClassifyArch(maxSum),
		MandibularClass: a.ClassifyArch(mandSum),
		Comparison:      comparison,
		Notes:           notes,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DefaultMaxillaryWidths returns the literature ideal maxillary widths.
func DefaultMaxillaryWidths() ToothWidthSet {
	return ToothWidthSet{8.5, 6.5, 7.6, 7.0, 6.8, 10.0, 9.5}
}

// DefaultMandibularWidths returns the literature ideal mandibular widths.
func DefaultMandibularWidths() ToothWidthSet {
	return ToothWidthSet{5.0, 5.5, 6.5, 7.0, 7.0, 11.0, 10.5}
}
