package textscan

import (
	"testing"

	"github.com/mingshu-dev/yaocast/internal/fortune"
)

func mustScanner(t *testing.T) *Scanner {
	t.Helper()
	s, err := NewScanner(DefaultConfig())
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	return s
}

func TestAnalyzeKeywordScores(t *testing.T) {
	s := mustScanner(t)

	cases := []struct {
		name     string
		text     string
		score    int
		mildOnly bool
		negative bool
	}{
		{"empty", "", 0, false, false},
		{"no markers", "潛龍在田", 0, false, false},
		{"supreme fortune", "黃裳，元吉。", 3, false, false},
		{"ending fortune", "愬愬終吉。", 3, false, false},
		{"bare fortune", "休復，吉。", 2, false, false},
		{"steadfast misfortune", "翰音登于天，貞凶。", -3, false, true},
		{"no blame alone", "剝之，无咎。", 0, true, false},
		{"regret alone", "亢龍有悔。", -1, false, true},
		{"regret gone", "悔亡。", 1, false, false},
		{"no regret", "敦復，无悔。", 0, true, false},
		{"no calamity", "震行无眚。", 0, true, false},
		{"calamity", "行有眚，无攸利。", -3, false, true},
		{"clamp negative", "迷復，凶，有災眚。", -6, false, true},
		{"clamp positive", "吉吉吉吉", 6, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := s.Analyze(tc.text)
			if sig.Score != tc.score {
				t.Errorf("score = %d, want %d (matched %v)", sig.Score, tc.score, sig.Matched)
			}
			if sig.MildOnly != tc.mildOnly {
				t.Errorf("mildOnly = %v, want %v", sig.MildOnly, tc.mildOnly)
			}
			if sig.Negative != tc.negative {
				t.Errorf("negative = %v, want %v", sig.Negative, tc.negative)
			}
		})
	}
}

func TestAnalyzeMasking(t *testing.T) {
	s := mustScanner(t)

	// 元吉 must consume its 吉 so the bare 吉 rule cannot double-count.
	sig := s.Analyze("元吉")
	if len(sig.Matched) != 1 || sig.Matched[0].Pattern != "元吉" {
		t.Fatalf("matched = %v, want single 元吉", sig.Matched)
	}

	// 貞凶 likewise shadows 凶.
	sig = s.Analyze("貞凶")
	if sig.Score != -3 {
		t.Errorf("貞凶 score = %d, want -3", sig.Score)
	}
	if len(sig.Matched) != 1 {
		t.Errorf("貞凶 matched = %v, want single compound match", sig.Matched)
	}

	// 无不利 shadows both 不利 and 利.
	sig = s.Analyze("不習无不利。")
	if sig.Score != 3 {
		t.Errorf("无不利 score = %d, want 3 (matched %v)", sig.Score, sig.Matched)
	}
	if sig.Negative {
		t.Error("无不利 flagged negative")
	}
}

func TestAnalyzeConditionals(t *testing.T) {
	s := mustScanner(t)

	cases := []struct {
		name  string
		text  string
		rule  string
		label fortune.Label
	}{
		{
			"advance misfortune stay fortune",
			"君子豹變，小人革面。征凶，居貞吉。",
			"advance-misfortune-stay-fortune",
			fortune.Auspicious,
		},
		{
			"misfortune stay fortune",
			"咸其腓，凶，居吉。",
			"misfortune-stay-fortune",
			fortune.Neutral,
		},
		{
			"danger then fortune",
			"由頤，厲吉，利涉大川。",
			"danger-then-fortune",
			fortune.Auspicious,
		},
		{
			"danger then fortune ending regret",
			"家人嗃嗃，悔厲吉。婦子嘻嘻，終吝。",
			"danger-then-fortune-ending-regret",
			fortune.Neutral,
		},
		{
			"steadfast fortune advance misfortune",
			"繫于金柅，貞吉。有攸往，見凶。",
			"steadfast-fortune-advance-misfortune",
			fortune.Auspicious,
		},
		{
			"wife fortune husband misfortune",
			"恆其德，貞，婦人吉，夫子凶。",
			"wife-fortune-husband-misfortune",
			fortune.Neutral,
		},
		{
			"no blame no praise",
			"括囊，无咎无譽。",
			"no-blame-no-praise",
			fortune.Neutral,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := s.Analyze(tc.text)
			if sig.Conditional == nil {
				t.Fatal("no conditional fired")
			}
			if sig.Conditional.Name != tc.rule {
				t.Errorf("rule = %q, want %q", sig.Conditional.Name, tc.rule)
			}
			if sig.Conditional.Label != tc.label {
				t.Errorf("label = %q, want %q", sig.Conditional.Label, tc.label)
			}
		})
	}

	// Plain misfortune text must not trigger any conditional.
	if sig := s.Analyze("來兌，凶。"); sig.Conditional != nil {
		t.Errorf("unexpected conditional %v", sig.Conditional)
	}
}

func TestNewScannerRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Conditionals = append(cfg.Conditionals, ConditionalRule{
		Name: "broken", Expr: `[`, Label: fortune.Neutral,
	})
	if _, err := NewScanner(cfg); err == nil {
		t.Fatal("expected error for invalid expression")
	}

	cfg = DefaultConfig()
	cfg.Conditionals = append(cfg.Conditionals, ConditionalRule{
		Name: "bad-label", Expr: `吉`, Label: fortune.Label("great"),
	})
	if _, err := NewScanner(cfg); err == nil {
		t.Fatal("expected error for invalid label")
	}
}
