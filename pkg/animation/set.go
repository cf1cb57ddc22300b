package animation

import "time"

// Policy decides how Set.Animated combines its textures.
type Policy int

const (
	// AnyAnimated reports true when at least one texture has several frames.
	AnyAnimated Policy = iota
	// AllAnimated reports true only when every bound texture has several frames.
	AllAnimated
)

// Set holds the textures of a group of materials so they can be stepped
// together. A nil entry is a material without a bound texture and counts as
// a single frame.
type Set struct {
	Textures []*Texture
}

// Period returns the number of frames after which every texture in the set
// is back at the same tile: the least common multiple of their frame counts.
func (s *Set) Period() int {
	period := 1
	for _, t := range s.Textures {
		if t != nil {
			period = LCM(period, t.NumFrames())
		}
	}
	return period
}

func (s *Set) SetFrame(index int) {
	for _, t := range s.Textures {
		if t != nil {
			t.SetFrame(index)
		}
	}
}

func (s *Set) Advance(dt time.Duration) {
	for _, t := range s.Textures {
		if t != nil {
			t.Advance(dt)
		}
	}
}

// Animated evaluates the set under the given policy. Unbound entries are
// skipped; an empty set is never animated.
func (s *Set) Animated(policy Policy) bool {
	bound := 0
	for _, t := range s.Textures {
		if t == nil {
			continue
		}
		bound++
		animated := t.IsAnimated()
		if policy == AnyAnimated && animated {
			return true
		}
		if policy == AllAnimated && !animated {
			return false
		}
	}
	return policy == AllAnimated && bound > 0
}

// GCD returns the greatest common divisor of two positive integers.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of two positive integers.
func LCM(a, b int) int {
	return a / GCD(a, b) * b
}
