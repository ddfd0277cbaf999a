package fortune

import "testing"

func TestLabelValid(t *testing.T) {
	for _, l := range Labels() {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	if Label("great").Valid() {
		t.Error("unknown label accepted")
	}
	if Label("").Valid() {
		t.Error("empty label accepted")
	}
}

func TestGlyphAndScore(t *testing.T) {
	cases := []struct {
		label Label
		glyph string
		score float64
	}{
		{Auspicious, "吉", 2},
		{Neutral, "中", 0},
		{Inauspicious, "凶", -2},
	}
	for _, tc := range cases {
		if g := tc.label.Glyph(); g != tc.glyph {
			t.Errorf("%s glyph = %s, want %s", tc.label, g, tc.glyph)
		}
		if s := tc.label.Score(); s != tc.score {
			t.Errorf("%s score = %v, want %v", tc.label, s, tc.score)
		}
	}
}

func TestFromSign(t *testing.T) {
	if FromSign(3) != Auspicious || FromSign(-1) != Inauspicious || FromSign(0) != Neutral {
		t.Error("FromSign mapping wrong")
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("neutral")
	if err != nil || l != Neutral {
		t.Errorf("Parse(neutral) = %v, %v", l, err)
	}
	if _, err := Parse("lucky"); err == nil {
		t.Error("Parse accepted unknown label")
	}
}
