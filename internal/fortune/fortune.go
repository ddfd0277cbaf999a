// Package fortune defines the three-way fortune label shared by the
// classifier, the lookup table, and the reporting layer.
package fortune

import "fmt"

// #region label

// Label is the fortune classification of a single line.
type Label string

const (
	Auspicious   Label = "auspicious"   // 吉
	Neutral      Label = "neutral"      // 中
	Inauspicious Label = "inauspicious" // 凶
)

// Labels lists all valid labels in display order.
func Labels() []Label {
	return []Label{Auspicious, Neutral, Inauspicious}
}

// Valid reports whether l is one of the three defined labels.
func (l Label) Valid() bool {
	switch l {
	case Auspicious, Neutral, Inauspicious:
		return true
	}
	return false
}

// Glyph returns the single-character classical form of the label.
func (l Label) Glyph() string {
	switch l {
	case Auspicious:
		return "吉"
	case Inauspicious:
		return "凶"
	default:
		return "中"
	}
}

// #endregion label

// #region score

// Score maps a label onto the signed baseline scale used by the
// structural blend: auspicious +2, neutral 0, inauspicious -2.
func (l Label) Score() float64 {
	switch l {
	case Auspicious:
		return 2.0
	case Inauspicious:
		return -2.0
	default:
		return 0.0
	}
}

// FromSign converts a signed value into a label: positive → auspicious,
// negative → inauspicious, zero → neutral.
func FromSign(v int) Label {
	switch {
	case v > 0:
		return Auspicious
	case v < 0:
		return Inauspicious
	default:
		return Neutral
	}
}

// Parse converts a stored string into a Label.
func Parse(s string) (Label, error) {
	l := Label(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown fortune label %q", s)
	}
	return l, nil
}

// #endregion score
