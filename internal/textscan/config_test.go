package textscan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverridesKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	raw := `max_score: 4
keywords:
  - pattern: 吉
    weight: 2
  - pattern: 凶
    weight: -2
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxScore != 4 {
		t.Errorf("max score = %d, want 4", cfg.MaxScore)
	}
	if len(cfg.Keywords) != 2 {
		t.Errorf("keywords = %d rules, want 2", len(cfg.Keywords))
	}
	// Unset sections keep their defaults.
	if len(cfg.Conditionals) != len(DefaultConfig().Conditionals) {
		t.Errorf("conditionals = %d rules, want defaults", len(cfg.Conditionals))
	}

	s, err := NewScanner(cfg)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	if sig := s.Analyze("元吉"); sig.Score != 2 {
		t.Errorf("score under replaced table = %d, want 2", sig.Score)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
