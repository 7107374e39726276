package core

import (
	"errors"
	"math"
	"sort"
)

// ZoomSteps is an ascending, duplicate-free set of selectable scales.
type ZoomSteps []float64

// DefaultZoomSteps are the selectable zoom levels of the viewer.
var DefaultZoomSteps = ZoomSteps{0.5, 0.75, 1, 1.25, 1.5, 2, 3, 4}

// DefaultZoom is the initially selected level (mid-range of DefaultZoomSteps).
const DefaultZoom = 1.5

var errZoomSteps = errors.New("zoom steps must be positive and strictly ascending")

// NewZoomSteps sorts and validates a set of scales.
func NewZoomSteps(values ...float64) (ZoomSteps, error) {
	if len(values) == 0 {
		return nil, errZoomSteps
	}
	steps := make(ZoomSteps, len(values))
	copy(steps, values)
	sort.Float64s(steps)
	if err := steps.Validate(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Validate checks that the steps are positive and strictly ascending.
func (z ZoomSteps) Validate() error {
	if len(z) == 0 {
		return errZoomSteps
	}
	for i, v := range z {
		if !(v > 0) || math.IsInf(v, 0) {
			return errZoomSteps
		}
		if i > 0 && v <= z[i-1] {
			return errZoomSteps
		}
	}
	return nil
}

// Contains reports whether v is a member of the set.
func (z ZoomSteps) Contains(v float64) bool {
	i := sort.SearchFloat64s(z, v)
	return i < len(z) && z[i] == v
}

// Above returns the smallest member strictly greater than v.
func (z ZoomSteps) Above(v float64) (float64, bool) {
	i := sort.Search(len(z), func(i int) bool { return z[i] > v })
	if i == len(z) {
		return 0, false
	}
	return z[i], true
}

// Below returns the largest member strictly smaller than v.
func (z ZoomSteps) Below(v float64) (float64, bool) {
	i := sort.Search(len(z), func(i int) bool { return z[i] >= v })
	if i == 0 {
		return 0, false
	}
	return z[i-1], true
}

// Nearest returns the member closest to v. Ties resolve to the smaller member.
func (z ZoomSteps) Nearest(v float64) float64 {
	best := z[0]
	for _, s := range z[1:] {
		if math.Abs(s-v) < math.Abs(best-v) {
			best = s
		}
	}
	return best
}

// Index returns the position of v in the set, or -1.
func (z ZoomSteps) Index(v float64) int {
	i := sort.SearchFloat64s(z, v)
	if i < len(z) && z[i] == v {
		return i
	}
	return -1
}
