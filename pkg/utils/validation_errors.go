package utils

import (
	"fmt"
	"strings"
)

// FieldViolation names one invalid field in a submitted payload, using a
// dotted path such as "waveConditions.height" or "marineLife.species[1]".
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationErrors collects every violation found in a payload, not just the
// first, so clients can surface them all in one round trip.
type ValidationErrors []FieldViolation

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, fv := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fv.Field, fv.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) Add(field, reason string) {
	*v = append(*v, FieldViolation{Field: field, Reason: reason})
}
