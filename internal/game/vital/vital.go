// Package vital clamps capacity-style vitals into their valid range.
package vital

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned when a NaN or infinite value reaches the vital boundary.
var ErrNonFinite = errors.New("vital: value is not finite")

// Kind identifies a capacity-style vital.
type Kind int

const (
	HitPoints Kind = iota
	ArmorSlots
	Stress
	Hope
)

// String returns the vital's ledger name.
func (k Kind) String() string {
	switch k {
	case HitPoints:
		return "hit_points"
	case ArmorSlots:
		return "armor_slots"
	case Stress:
		return "stress"
	case Hope:
		return "hope"
	}
	return fmt.Sprintf("vital(%d)", int(k))
}

// Direction describes what "current" means for a vital.
type Direction int

const (
	// MarkBad vitals store remaining capacity; marking one decreases current.
	MarkBad Direction = iota
	// FillUpBad vitals store accumulated burden; marking one increases current.
	FillUpBad
)

// Direction returns how marks move the current value of k.
func (k Kind) Direction() Direction {
	if k == Stress {
		return FillUpBad
	}
	return MarkBad
}

// Clamp constrains value to [0, max]. The range is the same for every kind.
// A negative max is treated as 0.
//
// Postcondition: 0 <= result <= max(max, 0).
func Clamp(_ Kind, value, max int) int {
	if max < 0 {
		max = 0
	}
	if value < 0 {
		return 0
	}
	if value > max {
		return max
	}
	return value
}

// Mark applies amount marks to current in the kind's bad direction and clamps the result.
//
// Precondition: amount >= 0.
// Postcondition: Returns a value in [0, max].
func Mark(kind Kind, current, max, amount int) int {
	if kind.Direction() == FillUpBad {
		return Clamp(kind, current+amount, max)
	}
	return Clamp(kind, current-amount, max)
}

// Clear removes amount marks from current, the inverse of Mark, and clamps the result.
//
// Precondition: amount >= 0.
// Postcondition: Returns a value in [0, max].
func Clear(kind Kind, current, max, amount int) int {
	if kind.Direction() == FillUpBad {
		return Clamp(kind, current-amount, max)
	}
	return Clamp(kind, current+amount, max)
}

// FromFloat converts an externally supplied number to a vital value, truncating toward zero.
//
// Postcondition: Returns ErrNonFinite for NaN or infinities.
func FromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("converting %v: %w", f, ErrNonFinite)
	}
	return int(math.Trunc(f)), nil
}
