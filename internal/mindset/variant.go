package mindset

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindset/internal/quotes"
)

// Variant selects which of the two dashboards runs.
type Variant string

const (
	// VariantChallenge is the profile + yes/no self-check dashboard.
	VariantChallenge Variant = "challenge"
	// VariantTracker is the skills, achievements and goals dashboard with
	// the multiple-choice scenario quiz.
	VariantTracker Variant = "tracker"
)

// ParseVariant parses a variant name. Empty selects VariantChallenge.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantChallenge:
		return VariantChallenge, nil
	case VariantTracker:
		return VariantTracker, nil
	}
	return "", fmt.Errorf("unknown variant %q: must be %s or %s", s, VariantChallenge, VariantTracker)
}

// Quiz returns the quiz for the variant.
func (v Variant) Quiz() Quiz {
	if v == VariantTracker {
		return Scenario
	}
	return Challenge
}

// Quotes returns the built-in quote set for the variant.
func (v Variant) Quotes() []string {
	if v == VariantTracker {
		return quotes.Tracker
	}
	return quotes.Challenge
}

// HasTracker reports whether the variant shows skills, achievements and goals.
func (v Variant) HasTracker() bool {
	return v == VariantTracker
}
