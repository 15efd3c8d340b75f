// Package gesture turns raw bend and whammy bar point lists into the closed set
// of gesture types used by the model.
package gesture

import (
	"errors"
	"fmt"

	"github.com/Garik-/gpscore/pkg/model"
)

var (
	// ErrInvalidPoints is reported for point lists that break ordering or count limits.
	ErrInvalidPoints = errors.New("invalid gesture points")
)

// Limits bounds the number of points a format may declare for one gesture.
type Limits struct {
	MinPoints int
	MaxPoints int
}

// GP7Limits matches the origin, two middle and destination points of GPIF gestures.
var GP7Limits = Limits{MinPoints: 2, MaxPoints: 4}

// Validate checks that points fit l and that offsets do not decrease and stay
// within 0..BendPointMaxOffset. An empty list is always valid.
func Validate(points []model.BendPoint, l Limits) error {
	if len(points) == 0 {
		return nil
	}
	if len(points) < l.MinPoints || (l.MaxPoints > 0 && len(points) > l.MaxPoints) {
		return fmt.Errorf("%w - %d points, expected %d..%d", ErrInvalidPoints, len(points), l.MinPoints, l.MaxPoints)
	}
	for i, p := range points {
		if p.Offset < 0 || p.Offset > model.BendPointMaxOffset {
			return fmt.Errorf("%w - point %d offset %d outside 0..%d", ErrInvalidPoints, i, p.Offset, model.BendPointMaxOffset)
		}
		if i > 0 && p.Offset < points[i-1].Offset {
			return fmt.Errorf("%w - point %d offset %d before %d", ErrInvalidPoints, i, p.Offset, points[i-1].Offset)
		}
	}
	return nil
}

// IsContinued reports whether points pick up where prev ended: the previous
// final value is non-zero and equals the first value of points.
func IsContinued(prev, points []model.BendPoint) bool {
	if len(prev) == 0 || len(points) == 0 {
		return false
	}
	last := prev[len(prev)-1].Value
	return last != 0 && last == points[0].Value
}

type shape struct {
	first, last int
	// above and below are set when an interior point lies beyond both endpoints.
	above, below bool
	zero         bool
}

func shapeOf(points []model.BendPoint) shape {
	s := shape{
		first: points[0].Value,
		last:  points[len(points)-1].Value,
		zero:  true,
	}
	hi, lo := s.first, s.first
	if s.last > hi {
		hi = s.last
	}
	if s.last < lo {
		lo = s.last
	}
	for i, p := range points {
		if p.Value != 0 {
			s.zero = false
		}
		if i == 0 || i == len(points)-1 {
			continue
		}
		if p.Value > hi {
			s.above = true
		}
		if p.Value < lo {
			s.below = true
		}
	}
	return s
}

func endpoints(points []model.BendPoint) []model.BendPoint {
	if len(points) <= 2 {
		return copyPoints(points)
	}
	return []model.BendPoint{points[0], points[len(points)-1]}
}

func copyPoints(points []model.BendPoint) []model.BendPoint {
	out := make([]model.BendPoint, len(points))
	copy(out, points)
	return out
}

// ClassifyBend returns the bend type of a note and the points kept for it.
// continued tells whether the note carries on the bend of its tie origin.
func ClassifyBend(points []model.BendPoint, continued bool) (model.BendType, []model.BendPoint) {
	if len(points) == 0 {
		return model.BendNone, nil
	}
	s := shapeOf(points)
	switch {
	case s.zero:
		return model.BendNone, copyPoints(points)
	case s.above:
		return model.BendBendRelease, copyPoints(points)
	case s.below:
		return model.BendCustom, copyPoints(points)
	case s.last > s.first:
		if s.first > 0 && !continued {
			return model.BendPrebendBend, endpoints(points)
		}
		return model.BendBend, endpoints(points)
	case s.last < s.first:
		if continued {
			return model.BendRelease, endpoints(points)
		}
		return model.BendPrebendRelease, endpoints(points)
	default:
		if s.first > 0 && !continued {
			return model.BendPrebend, endpoints(points)
		}
		return model.BendHold, endpoints(points)
	}
}

// ClassifyWhammy returns the whammy type of a beat and the points kept for it.
// continued tells whether the beat carries on the whammy of the previous beat.
func ClassifyWhammy(points []model.BendPoint, continued bool) (model.WhammyType, []model.BendPoint) {
	if len(points) == 0 {
		return model.WhammyNone, nil
	}
	s := shapeOf(points)
	switch {
	case s.above || s.below:
		return model.WhammyDip, dropDuplicateMiddle(points)
	case s.first == s.last:
		if s.first != 0 && !continued {
			return model.WhammyPredive, endpoints(points)
		}
		return model.WhammyHold, endpoints(points)
	case s.first != 0 && !continued:
		return model.WhammyPrediveDive, copyPoints(points)
	default:
		return model.WhammyDive, copyPoints(points)
	}
}

// dropDuplicateMiddle collapses the two middle points of a four point dip that
// describe a single turning point.
func dropDuplicateMiddle(points []model.BendPoint) []model.BendPoint {
	out := copyPoints(points)
	if len(out) != 4 {
		return out
	}
	m1, m2 := out[1], out[2]
	if m1.Offset == m2.Offset && m1.Value == m2.Value {
		return append(out[:2], out[3])
	}
	return out
}
