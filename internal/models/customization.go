package models

// SpiceLevel represents the customer's requested heat, from none to extra hot
type SpiceLevel int

const (
	SpiceNone SpiceLevel = iota
	SpiceMild
	SpiceMedium
	SpiceHot
	SpiceExtraHot
)

// String returns the kitchen-facing name for the spice level
func (s SpiceLevel) String() string {
	switch s {
	case SpiceNone:
		return "NONE"
	case SpiceMild:
		return "MILD"
	case SpiceMedium:
		return "MEDIUM"
	case SpiceHot:
		return "HOT"
	case SpiceExtraHot:
		return "EXTRA_HOT"
	default:
		return "UNKNOWN"
	}
}

// CustomizationOptions holds the per-item modifiers a customer picked
type CustomizationOptions struct {
	LowSalt         bool       `json:"lowSalt"`
	LowSugar        bool       `json:"lowSugar"`
	LowOil          bool       `json:"lowOil"`
	SpiceLevel      SpiceLevel `json:"spiceLevel"`
	AllergyNotes    string     `json:"allergyNotes"`
	SpecialRequests string     `json:"specialRequests"`
}

// Significant reports whether the customization warrants a dietary review.
// LowOil on its own does not trigger a review.
func (c CustomizationOptions) Significant() bool {
	return c.AllergyNotes != "" ||
		c.SpecialRequests != "" ||
		c.LowSalt ||
		c.LowSugar ||
		c.SpiceLevel > SpiceNone
}

// Any reports whether any modifier differs from the defaults
func (c CustomizationOptions) Any() bool {
	return c.Significant() || c.LowOil
}
