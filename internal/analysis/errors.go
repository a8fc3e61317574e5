package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a measurement that cannot enter the analysis.
type InvalidInputError struct {
	Arch   Arch
	Tooth  Tooth
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	var subject []string
	if e.Arch != UnknownArch {
		subject = append(subject, e.Arch.String())
	}
	if e.Tooth != NoTooth {
		subject = append(subject, e.Tooth.String())
	}

	msg := "invalid input"
	if len(subject) > 0 {
		msg += ": " + strings.Join(subject, " ")
		if e.Arch != UnknownArch && e.Tooth != NoTooth {
			msg += fmt.Sprintf(" (%s)", e.Tooth.FDI(e.Arch))
		}
	}
	if e.Value != "" {
		msg += fmt.Sprintf(": %q", e.Value)
	}
	return msg + ": " + e.Reason
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
