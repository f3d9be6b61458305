package dijkstra

import (
	"math"
	"strconv"
)

// Distance is either a finite real distance or infinity (unreached).
// The zero value is infinite.
type Distance struct {
	value  float64
	finite bool
}

// Finite returns the finite distance v. +Inf collapses to Inf().
func Finite(v float64) Distance {
	if math.IsInf(v, 1) {
		return Distance{}
	}

	return Distance{value: v, finite: true}
}

// Inf returns the infinite distance.
func Inf() Distance { return Distance{} }

// IsInf reports whether d is infinite.
func (d Distance) IsInf() bool { return !d.finite }

// Value returns the finite value of d and true, or (+Inf, false).
func (d Distance) Value() (float64, bool) {
	if !d.finite {
		return math.Inf(1), false
	}

	return d.value, true
}

// Float returns d as a float64, +Inf when infinite.
func (d Distance) Float() float64 {
	v, _ := d.Value()

	return v
}

// Less reports whether d is strictly smaller than o. Infinity is never
// smaller than anything.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// Add returns d extended by an edge of weight w.
func (d Distance) Add(w float64) Distance {
	if !d.finite {
		return d
	}

	return Finite(d.value + w)
}

// String renders the distance; infinity prints as "inf".
func (d Distance) String() string {
	if !d.finite {
		return "inf"
	}

	return strconv.FormatFloat(d.value, 'g', -1, 64)
}

// MarshalYAML encodes d as a YAML float; infinity becomes .inf.
func (d Distance) MarshalYAML() (interface{}, error) {
	return d.Float(), nil
}

// Distances maps every vertex name to its best known distance.
type Distances map[string]Distance

// Clone returns an independent copy of d.
func (d Distances) Clone() Distances {
	c := make(Distances, len(d))
	for k, v := range d {
		c[k] = v
	}

	return c
}

// Equal reports whether d and o hold the same keys and distances.
func (d Distances) Equal(o Distances) bool {
	if len(d) != len(o) {
		return false
	}
	for k, v := range d {
		if w, ok := o[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// Predecessors maps every vertex name to the vertex it was reached from.
// The empty string means none.
type Predecessors map[string]string

// Of returns the predecessor of v, or false when v has none.
func (p Predecessors) Of(v string) (string, bool) {
	u := p[v]

	return u, u != ""
}

// History is the append-only sequence of distance snapshots.
type History []Distances
