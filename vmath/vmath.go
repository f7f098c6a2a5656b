package vmath

import "math"

// Vec2 is a world-space vector in arena units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for a Vec2 literal
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2        { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2        { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Scale(s float64) Vec2   { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64     { return a.X*b.X + a.Y*b.Y }
func (a Vec2) LenSq() float64         { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Len() float64           { return math.Sqrt(a.LenSq()) }
func (a Vec2) DistSq(b Vec2) float64  { return a.Sub(b).LenSq() }
func (a Vec2) Dist(b Vec2) float64    { return a.Sub(b).Len() }
func (a Vec2) Angle() float64         { return math.Atan2(a.Y, a.X) }
func (a Vec2) IsZero() bool           { return a.X == 0 && a.Y == 0 }
func (a Vec2) Perp() Vec2             { return Vec2{-a.Y, a.X} }
func (a Vec2) Lerp(b Vec2, t float64) Vec2 { return a.Add(b.Sub(a).Scale(t)) }

// Normalize returns the unit vector, zero stays zero
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// ClampLen limits the magnitude to max
func (a Vec2) ClampLen(max float64) Vec2 {
	l := a.Len()
	if l <= max || l == 0 {
		return a
	}
	return a.Scale(max / l)
}

// Rotate rotates the vector by angle radians
func (a Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// FromAngle builds a vector of magnitude mag pointing at angle
func FromAngle(angle, mag float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c * mag, s * mag}
}

// Toward returns the unit direction from a to b, zero when coincident
func Toward(a, b Vec2) Vec2 {
	return b.Sub(a).Normalize()
}

// WithinRadius reports whether b lies inside the circle of radius r around a
func WithinRadius(a, b Vec2, r float64) bool {
	return a.DistSq(b) <= r*r
}

// Clamp bounds v to [lo, hi], NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NonNeg clamps negatives and NaN to zero
func NonNeg(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	return v
}

// AngleDiff returns the signed shortest rotation from -> to in (-Pi, Pi]
func AngleDiff(from, to float64) float64 {
	d := math.Mod(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// --- Randomness ---

// FastRand is a xorshift64 source; one per world, never shared across goroutines
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Angle returns a uniformly random heading
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}
