package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingshu-dev/yaocast/internal/engine"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), cfg.Engine)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestClassifyCommand(t *testing.T) {
	out, err := runCommand(t, "classify", "2", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Hexagram 2 坤")
	assert.Contains(t, out, "黃裳，元吉")
	assert.Contains(t, out, "auspicious")
}

func TestClassifyCustomText(t *testing.T) {
	out, err := runCommand(t, "classify", "29", "1", "--text", "貞凶。")
	require.NoError(t, err)
	assert.Contains(t, out, "inauspicious")
}

func TestClassifyRejectsBadIndex(t *testing.T) {
	_, err := runCommand(t, "classify", "99", "1")
	assert.Error(t, err)

	_, err = runCommand(t, "classify", "1", "9")
	assert.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	out, err := runCommand(t, "inspect", "24")
	require.NoError(t, err)
	assert.Contains(t, out, "Hexagram 24 復")
	assert.Contains(t, out, "000001")
	assert.Contains(t, out, "坤 over 震")
	assert.Contains(t, out, "迷復")
}

func TestEvaluateCommand(t *testing.T) {
	out, err := runCommand(t, "evaluate")
	require.NoError(t, err)
	assert.Contains(t, out, "Accuracy: 384/384")
}

func TestSeedCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "corpus.db")
	out, err := runCommand(t, "--db", db, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 384 lines")

	// A seeded database feeds the classifier the same corpus.
	out, err = runCommand(t, "--db", db, "classify", "2", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "auspicious")
}
