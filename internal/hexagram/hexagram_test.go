package hexagram

import (
	"errors"
	"testing"
)

func TestValidateCanon(t *testing.T) {
	if err := ValidateCanon(); err != nil {
		t.Fatalf("ValidateCanon: %v", err)
	}
}

func TestTrigramDecomposition(t *testing.T) {
	cases := []struct {
		number int
		upper  Trigram
		lower  Trigram
		binary string
	}{
		{1, Qian, Qian, "111111"},
		{2, Kun, Kun, "000000"},
		{3, Kan, Zhen, "010001"},
		{11, Kun, Qian, "000111"},
		{12, Qian, Kun, "111000"},
		{24, Kun, Zhen, "000001"},
		{63, Kan, Li, "010101"},
		{64, Li, Kan, "101010"},
	}
	for _, tc := range cases {
		h, err := ByNumber(tc.number)
		if err != nil {
			t.Fatalf("ByNumber(%d): %v", tc.number, err)
		}
		if h.Upper() != tc.upper || h.Lower() != tc.lower {
			t.Errorf("hexagram %d: trigrams %s/%s, want %s/%s",
				tc.number, h.Upper().Name(), h.Lower().Name(), tc.upper.Name(), tc.lower.Name())
		}
		if h.Binary() != tc.binary {
			t.Errorf("hexagram %d: binary %s, want %s", tc.number, h.Binary(), tc.binary)
		}
		upper, lower, err := Decompose(h.Value)
		if err != nil {
			t.Fatalf("Decompose(%d): %v", h.Value, err)
		}
		if Recompose(upper, lower) != h.Value {
			t.Errorf("hexagram %d: decomposition does not round-trip", tc.number)
		}
	}
}

func TestStructuralRelations(t *testing.T) {
	// 乾 and 坤 are each other's complement.
	qian, _ := ByNumber(1)
	kun, _ := ByNumber(2)
	if c, err := Complement(qian.Value); err != nil || c != kun.Value {
		t.Errorf("complement of 乾 = %d, %v; want %d", c, err, kun.Value)
	}

	// 泰 inverted is 否.
	tai, _ := ByNumber(11)
	pi, _ := ByNumber(12)
	if inv, err := Inverse(tai.Value); err != nil || inv != pi.Value {
		t.Errorf("inverse of 泰 = %d, %v; want %d", inv, err, pi.Value)
	}

	// Inverse is an involution over the whole domain.
	for v := 0; v <= 63; v++ {
		once, err := Inverse(v)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Inverse(once)
		if err != nil {
			t.Fatal(err)
		}
		if twice != v {
			t.Fatalf("inverse not an involution at %d", v)
		}
	}

	// Nuclear of 乾 stays 乾; nuclear of 既濟 is 未濟.
	if n, err := Nuclear(qian.Value); err != nil || n != qian.Value {
		t.Errorf("nuclear of 乾 = %d, %v", n, err)
	}
	jiji, _ := ByNumber(63)
	weiji, _ := ByNumber(64)
	if n, err := Nuclear(jiji.Value); err != nil || n != weiji.Value {
		t.Errorf("nuclear of 既濟 = %d, %v; want %d", n, err, weiji.Value)
	}
}

func TestRangeErrors(t *testing.T) {
	if _, _, err := Decompose(64); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Decompose(64) = %v, want ErrInvalidValue", err)
	}
	if _, err := Complement(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Complement(-1) = %v, want ErrInvalidValue", err)
	}
	if _, err := ByNumber(0); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("ByNumber(0) = %v, want ErrInvalidNumber", err)
	}
	if _, err := ByValue(99); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("ByValue(99) = %v, want ErrInvalidValue", err)
	}
}

func TestYang(t *testing.T) {
	h, _ := ByNumber(24) // 復: only the bottom line is yang
	if !h.Yang(1) {
		t.Error("復 line 1 should be yang")
	}
	for pos := 2; pos <= 6; pos++ {
		if h.Yang(pos) {
			t.Errorf("復 line %d should be yin", pos)
		}
	}
}
