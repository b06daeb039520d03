// Package nutrient enumerates the tracked nutrients and provides a fixed-size
// per-nutrient vector used by every stage of the assessment pipeline.
package nutrient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Nutrient identifies one of the tracked nutrients.
type Nutrient int

const (
	Iron Nutrient = iota
	VitaminB12
	VitaminD
	Calcium
	Magnesium
	Zinc
	Protein

	// Count is the number of tracked nutrients.
	Count
)

// All lists the tracked nutrients in canonical order.
var All = [Count]Nutrient{Iron, VitaminB12, VitaminD, Calcium, Magnesium, Zinc, Protein}

var names = [Count]string{
	Iron:       "iron",
	VitaminB12: "vitamin_b12",
	VitaminD:   "vitamin_d",
	Calcium:    "calcium",
	Magnesium:  "magnesium",
	Zinc:       "zinc",
	Protein:    "protein",
}

var units = [Count]string{
	Iron:       "mg",
	VitaminB12: "mcg",
	VitaminD:   "IU",
	Calcium:    "mg",
	Magnesium:  "mg",
	Zinc:       "mg",
	Protein:    "g",
}

// Valid reports whether n is one of the tracked nutrients.
func (n Nutrient) Valid() bool {
	return n >= 0 && n < Count
}

func (n Nutrient) String() string {
	if !n.Valid() {
		return fmt.Sprintf("nutrient(%d)", int(n))
	}
	return names[n]
}

// Unit returns the unit RDA values for n are expressed in.
func (n Nutrient) Unit() string {
	if !n.Valid() {
		return ""
	}
	return units[n]
}

// Parse resolves a nutrient key such as "vitamin_b12". Matching is case-insensitive.
func Parse(s string) (Nutrient, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, n := range All {
		if names[n] == key {
			return n, true
		}
	}
	return 0, false
}

func (n Nutrient) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, fmt.Errorf("invalid nutrient %d", int(n))
	}
	return []byte(names[n]), nil
}

func (n *Nutrient) UnmarshalText(b []byte) error {
	parsed, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown nutrient %q", string(b))
	}
	*n = parsed
	return nil
}

// Vector holds one value per tracked nutrient.
type Vector [Count]float64

// Fill returns a vector with every nutrient set to v.
func Fill(v float64) Vector {
	var out Vector
	for i := range out {
		out[i] = v
	}
	return out
}

// Add returns the element-wise sum of v and other.
func (v Vector) Add(other Vector) Vector {
	for i := range v {
		v[i] += other[i]
	}
	return v
}

// MarshalJSON encodes the vector as an object keyed by nutrient name, in canonical order.
func (v Vector) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range All {
		if i > 0 {
			b.WriteByte(',')
		}
		val, err := json.Marshal(v[n])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "%q:%s", names[n], val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}
