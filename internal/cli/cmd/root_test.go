package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/burrow/internal/domain/build"
)

func TestConfigSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "schema"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	assert.Equal(t, "Burrow Preferences", schema["title"])
	assert.Nil(t, GetApp())
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"browse"},
		{"version"},
		{"engines"},
		{"config", "path"},
		{"config", "show"},
		{"config", "schema"},
		{"config", "reset"},
		{"history", "list"},
		{"history", "clear"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name())
	}
}

func TestResetAndClearHaveYesFlag(t *testing.T) {
	assert.NotNil(t, configResetCmd.Flags().Lookup("yes"))
	assert.NotNil(t, historyClearCmd.Flags().Lookup("yes"))
	assert.NotNil(t, historyListCmd.Flags().Lookup("limit"))
	assert.NotNil(t, browseCmd.Flags().Lookup("incognito"))
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", BuildDate: "2026-01-01"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		SetBuildInfo(build.Info{})
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "built: 2026-01-01")
}
