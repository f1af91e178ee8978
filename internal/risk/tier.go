// Package risk maps a churn probability to a risk tier and its fixed
// recommendation block.
package risk

import "github.com/abhisek/churnlens/internal/locale"

// Tier is a churn risk band.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// Upper bounds (inclusive) of the low and medium bands, in percent.
const (
	LowMax    = 30.0
	MediumMax = 60.0
)

// String returns the tier label.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "LOW"
	case TierMedium:
		return "MEDIUM"
	case TierHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// Color returns the display colour of the tier as a hex string.
func (t Tier) Color() string {
	switch t {
	case TierLow:
		return "#4CAF50"
	case TierMedium:
		return "#FFC107"
	default:
		return "#E53935"
	}
}

// TierFor classifies a probability percentage. Bounds are inclusive on the
// lower tier: 30 is LOW, 60 is MEDIUM.
func TierFor(percent float64) Tier {
	switch {
	case percent <= LowMax:
		return TierLow
	case percent <= MediumMax:
		return TierMedium
	default:
		return TierHigh
	}
}

// Assessment is the presentational outcome of a tier.
type Assessment struct {
	Tier    Tier
	Color   string
	Status  string
	Title   string
	Actions []Action
}

// Action is one recommendation bullet.
type Action struct {
	Heading string
	Detail  string
}

// Assess returns the tier and the fixed recommendation block for percent.
func Assess(percent float64, loc locale.Locale) Assessment {
	t := TierFor(percent)
	r := locale.Pick(recommendations, loc)[t]
	actions := make([]Action, len(r.actions))
	copy(actions, r.actions)
	return Assessment{
		Tier:    t,
		Color:   t.Color(),
		Status:  r.status,
		Title:   r.title,
		Actions: actions,
	}
}

// Disclaimer is shown next to every result.
func Disclaimer(loc locale.Locale) string {
	return locale.Pick(disclaimers, loc)
}
