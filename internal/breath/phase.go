// Package breath maps time within a box-breathing cycle onto a phase and
// a position along the square the ball travels.
package breath

import (
	"image/color"
	"math"

	"github.com/iburimskiy/square-breathing/internal/config"
)

// Phase names the breathing instruction shown to the user. Both holds
// share one value, so entering the second hold from the first never
// counts as a change.
type Phase string

const (
	None   Phase = ""
	Inhale Phase = "IN"
	Hold   Phase = "HOLD"
	Exhale Phase = "OUT"
)

func (p Phase) String() string { return string(p) }

// Color is the line color associated with the phase.
func (p Phase) Color() color.RGBA {
	switch p {
	case Inhale:
		return config.MustardYellow
	case Hold:
		return config.SoftPink
	case Exhale:
		return config.LightGrey
	default:
		return config.TextColor
	}
}

// State is everything the renderer needs for one frame.
type State struct {
	Phase     Phase
	LineColor color.RGBA
	Ball      Point
	// Progress within the current phase, 0..1.
	Progress float64
	// Cue is set when Phase differs from the last phase passed in.
	Cue bool
}

// CycleLength is the duration of one full inhale-hold-exhale-hold cycle.
func CycleLength(side float64) float64 {
	return 4 * side
}

// Normalize reduces elapsed seconds into [0, 4*side).
func Normalize(elapsed, side float64) float64 {
	t := math.Mod(elapsed, CycleLength(side))
	if t < 0 {
		t += CycleLength(side)
	}
	return t
}

// Compute classifies elapsed (already normalized) into a phase and places
// the ball on the matching edge. Each range is closed on its upper bound:
// elapsed == side is still Inhale. side must be non-zero.
func Compute(elapsed, side float64, sq Square, last Phase) State {
	edges := sq.Edges()

	var idx int
	switch {
	case elapsed <= side:
		idx = 0
	case elapsed <= 2*side:
		idx = 1
	case elapsed <= 3*side:
		idx = 2
	default:
		idx = 3
	}

	e := edges[idx]
	fraction := (elapsed - float64(idx)*side) / side
	return State{
		Phase:     e.Phase,
		LineColor: e.Phase.Color(),
		Ball:      lerp(e.From, e.To, fraction),
		Progress:  fraction,
		Cue:       e.Phase != last,
	}
}
