package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/war/internal/config"
	"github.com/arcanaland/war/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(config.EnvSeed, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvNoColor, "1")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestPlaySavedSortedDeck(t *testing.T) {
	isolate(t)

	out, err := run(t, "deck", "save", "sorted", "--sorted")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck order saved to:")

	out, err = run(t, "play", "--deck", "sorted", "--quiet")
	require.NoError(t, err)
	assert.Contains(t, out, "Victor received 26 cards")
	assert.Contains(t, out, "Florian received 26 cards")
	assert.NotContains(t, out, "--- Round")
	assert.Contains(t, out, "Winner: Florian with 24 points!")
	assert.Contains(t, out, "Final score: Victor 2 - Florian 24")
}

func TestDeckListMarksDefault(t *testing.T) {
	isolate(t)

	_, err := run(t, "deck", "save", "first", "--seed", "3", "--sorted=false")
	require.NoError(t, err)
	_, err = run(t, "deck", "set-default", "first")
	require.NoError(t, err)

	out, err := run(t, "deck", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "* first (seed 3) [DEFAULT]")
}

func TestValidateCommand(t *testing.T) {
	dir := isolate(t)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, deck.WriteOrderFile(good, "sorted", deck.Build()))
	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid deck order")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[deck]\nname = \"x\"\ncards = [\"AS\", \"AS\"]\n"), 0644))
	out, err = run(t, "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "duplicate card: AS (2 copies)")
}

func TestShowCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "show", "10h")
	require.NoError(t, err)
	assert.Contains(t, out, "ten of hearts")
	assert.Contains(t, out, "32 cards")
	assert.Contains(t, out, "10♣ 10♦ 10♠")

	_, err = run(t, "show", "joker")
	assert.Error(t, err)
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"aaaa bbbb", "cccc"}, wrapText("aaaa bbbb cccc", 10))
	assert.Equal(t, []string{""}, wrapText("", 20))
}
