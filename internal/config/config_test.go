package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModels(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func fullModelSet() map[string]string {
	return map[string]string{
		"negative_terms.json":  `["toxic","broken"]`,
		"topic_terms.json":     `{"workload":["overtime"],"tooling":["vpn"],"process":["meetings"]}`,
		"attrition_model.json": `{"intercept":-2.0,"features":{"overtime_hours":0.1}}`,
		"latest_features.json": `[{"team_id":"T1","emp_hash":"a","overtime_hours":12}]`,
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads env defaults and model files", func(t *testing.T) {
		dir := t.TempDir()
		writeModels(t, dir, fullModelSet())
		t.Setenv("MODELS_DIR", dir)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "RISK-OPS", cfg.DefaultTeam)
		assert.Equal(t, 60, cfg.DefaultWindowDays)
		assert.Equal(t, []string{"toxic", "broken"}, cfg.NegativeTerms)
		assert.Equal(t, -2.0, cfg.Attrition.Intercept)
		require.Len(t, cfg.Features, 1)
		assert.Equal(t, 12.0, cfg.Features[0].Values["overtime_hours"])
	})

	t.Run("topic table order is preserved", func(t *testing.T) {
		dir := t.TempDir()
		writeModels(t, dir, fullModelSet())
		t.Setenv("MODELS_DIR", dir)

		cfg, err := Load()
		require.NoError(t, err)
		require.Len(t, cfg.Topics, 3)
		assert.Equal(t, "workload", cfg.Topics[0].Name)
		assert.Equal(t, "tooling", cfg.Topics[1].Name)
		assert.Equal(t, "process", cfg.Topics[2].Name)
	})

	t.Run("missing lexicon is fatal", func(t *testing.T) {
		dir := t.TempDir()
		files := fullModelSet()
		delete(files, "negative_terms.json")
		writeModels(t, dir, files)
		t.Setenv("MODELS_DIR", dir)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative lexicon")
	})

	t.Run("missing topic table is fatal", func(t *testing.T) {
		dir := t.TempDir()
		files := fullModelSet()
		delete(files, "topic_terms.json")
		writeModels(t, dir, files)
		t.Setenv("MODELS_DIR", dir)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "topic table")
	})

	t.Run("empty lexicon is as fatal as a missing one", func(t *testing.T) {
		dir := t.TempDir()
		files := fullModelSet()
		files["negative_terms.json"] = `[]`
		writeModels(t, dir, files)
		t.Setenv("MODELS_DIR", dir)

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		writeModels(t, dir, fullModelSet())
		t.Setenv("MODELS_DIR", dir)
		t.Setenv("DEFAULT_TEAM", "PAYMENTS")
		t.Setenv("DEFAULT_WINDOW_DAYS", "30")
		t.Setenv("PULSE_STORE_MODE", "readonly")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "PAYMENTS", cfg.DefaultTeam)
		assert.Equal(t, 30, cfg.DefaultWindowDays)
		assert.Equal(t, "readonly", cfg.StoreMode)
	})
}
