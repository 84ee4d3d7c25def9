package freqfilter

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedMethod is returned when a filter method is unknown, either
// as an out-of-range [Method] value or as an unrecognized name.
var ErrUnsupportedMethod = errors.New("freqfilter: unsupported filter method")

// validateCutoffs checks that both cutoffs are normalized frequencies.
func validateCutoffs(spatial, temporal float64) error {
	if math.IsNaN(spatial) || spatial < 0 || spatial > 1 {
		return fmt.Errorf("freqfilter: spatial cutoff must be in [0, 1]: %v", spatial)
	}
	if math.IsNaN(temporal) || temporal < 0 || temporal > 1 {
		return fmt.Errorf("freqfilter: temporal cutoff must be in [0, 1]: %v", temporal)
	}
	return nil
}

// validateOrder checks the butterworth filter order.
func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("freqfilter: butterworth order must be >= 1: %d", order)
	}
	return nil
}
