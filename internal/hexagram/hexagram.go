// Package hexagram models the 8 trigrams, the 64 hexagrams of the King Wen
// sequence, and the derived structural relations (complement, inverse,
// nuclear) used by the lookup table and the inspect tooling.
package hexagram

// #region imports
import (
	"errors"
	"fmt"
)

// #endregion

// #region errors

// ErrInvalidValue is returned for 6-bit hexagram values outside [0,63].
var ErrInvalidValue = errors.New("hexagram value outside [0,63]")

// ErrInvalidNumber is returned for King Wen numbers outside [1,64].
var ErrInvalidNumber = errors.New("hexagram number outside [1,64]")

// ErrInvalidPosition is returned for line positions outside [1,6].
var ErrInvalidPosition = errors.New("line position outside [1,6]")

// #endregion errors

// #region trigram

// Trigram is one of the 8 three-bit line patterns. Bit 0 is the bottom
// line, bit 2 the top; a set bit is a yang (solid) line.
type Trigram int

const (
	Kun  Trigram = 0 // 坤 earth, 000
	Zhen Trigram = 1 // 震 thunder, 001
	Kan  Trigram = 2 // 坎 water, 010
	Dui  Trigram = 3 // 兌 lake, 011
	Gen  Trigram = 4 // 艮 mountain, 100
	Li   Trigram = 5 // 離 fire, 101
	Xun  Trigram = 6 // 巽 wind, 110
	Qian Trigram = 7 // 乾 heaven, 111
)

var trigramNames = [8]string{"坤", "震", "坎", "兌", "艮", "離", "巽", "乾"}

// Name returns the canonical Chinese name of the trigram.
func (t Trigram) Name() string {
	if t < 0 || t > 7 {
		return "?"
	}
	return trigramNames[t]
}

// Yang reports whether the line at position 1-3 (bottom to top) is yang.
func (t Trigram) Yang(position int) bool {
	return t>>(position-1)&1 == 1
}

// #endregion trigram

// #region hexagram

// Hexagram is one of the 64 six-line figures. Value encodes the lines as
// six bits: bit 0 is line 1 (bottom), bit 5 is line 6 (top), set = yang.
// Number is the King Wen sequence number, an externally supplied canonical
// ordering that is not derivable from Value.
type Hexagram struct {
	Number int
	Value  int
	Name   string
}

// Upper returns the upper (outer) trigram, lines 4-6.
func (h Hexagram) Upper() Trigram { return Trigram(h.Value >> 3 & 7) }

// Lower returns the lower (inner) trigram, lines 1-3.
func (h Hexagram) Lower() Trigram { return Trigram(h.Value & 7) }

// Yang reports whether the line at position 1-6 is yang.
func (h Hexagram) Yang(position int) bool {
	return h.Value>>(position-1)&1 == 1
}

// Binary returns the six-bit string form, top line first, matching the
// conventional written order.
func (h Hexagram) Binary() string {
	b := make([]byte, 6)
	for i := 0; i < 6; i++ {
		if h.Value>>(5-i)&1 == 1 {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// #endregion hexagram

// #region operations

// Decompose splits a 6-bit hexagram value into its upper and lower
// trigrams: bits 0-2 are the lower, bits 3-5 the upper.
func Decompose(value int) (upper, lower Trigram, err error) {
	if value < 0 || value > 63 {
		return 0, 0, fmt.Errorf("decompose %d: %w", value, ErrInvalidValue)
	}
	return Trigram(value >> 3 & 7), Trigram(value & 7), nil
}

// Recompose rebuilds a hexagram value from its two trigrams.
func Recompose(upper, lower Trigram) int {
	return int(upper)<<3 | int(lower)
}

// Complement flips every line within the 6-bit domain.
func Complement(value int) (int, error) {
	if value < 0 || value > 63 {
		return 0, fmt.Errorf("complement %d: %w", value, ErrInvalidValue)
	}
	return value ^ 0x3F, nil
}

// Inverse reverses the line order (180° rotation: line 1 ↔ line 6).
func Inverse(value int) (int, error) {
	if value < 0 || value > 63 {
		return 0, fmt.Errorf("inverse %d: %w", value, ErrInvalidValue)
	}
	out := 0
	for i := 0; i < 6; i++ {
		out |= (value >> i & 1) << (5 - i)
	}
	return out, nil
}

// Nuclear forms the nuclear hexagram: lines 2-4 become the new lower
// trigram and lines 3-5 the new upper trigram.
func Nuclear(value int) (int, error) {
	if value < 0 || value > 63 {
		return 0, fmt.Errorf("nuclear %d: %w", value, ErrInvalidValue)
	}
	lower := value >> 1 & 7
	upper := value >> 2 & 7
	return upper<<3 | lower, nil
}

// #endregion operations
