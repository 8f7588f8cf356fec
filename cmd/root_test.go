package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rightsteps/internal/models"
	"rightsteps/internal/services"
)

// writeTestConfig writes a config with AI search switched off so no
// provider credentials are needed. A non-empty dbPath enables SQLite.
func writeTestConfig(t *testing.T, dbPath string) string {
	t.Helper()
	content := "log:\n  level: error\nrag:\n  provider: none\n"
	if dbPath != "" {
		content += "database:\n  driver: sqlite3\n  dsn: " + dbPath + "\n"
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCoursesCommand(t *testing.T) {
	cfg := writeTestConfig(t, "")

	out, err := executeCommand(t, "--config", cfg, "courses", "--category", "Mathematics")
	require.NoError(t, err)
	assert.Contains(t, out, "GCSE Mathematics Higher")
	assert.Contains(t, out, "Page 1 of 1 (4 courses)")
	assert.NotContains(t, out, "Science Fundamentals")

	out, err = executeCommand(t, "--config", cfg, "courses", "gcse-mathematics-higher")
	require.NoError(t, err)
	assert.Contains(t, out, "GCSE Mathematics Higher (gcse-mathematics-higher)")

	_, err = executeCommand(t, "--config", cfg, "courses", "missing-course")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = executeCommand(t, "--config", cfg, "courses", "--page", "0")
	assert.Error(t, err)

	out, err = executeCommand(t, "--config", cfg, "courses", "--page", "1844674407370955162")
	require.NoError(t, err)
	assert.Contains(t, out, "of 2 (18 courses)")
}

func TestTutorsCommand(t *testing.T) {
	cfg := writeTestConfig(t, "")

	out, err := executeCommand(t, "--config", cfg, "tutors", "--category", "Science", "--rating", "4.9")
	require.NoError(t, err)
	assert.Contains(t, out, "Ms. Charlotte Brown")
	assert.Contains(t, out, "Dr. Daniel Martinez")
	assert.Contains(t, out, "(2 tutors)")

	out, err = executeCommand(t, "--config", cfg, "tutors", "dr-emily-thompson")
	require.NoError(t, err)
	assert.Contains(t, out, "Dr. Emily Thompson")
}

func TestSearchCommand_FallsBackWithoutProvider(t *testing.T) {
	cfg := writeTestConfig(t, "")

	out, err := executeCommand(t, "--config", cfg, "search", "math", "help")
	var perr *models.ProviderError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, services.ErrProviderDisabled)
	assert.Contains(t, out, services.FallbackAnswer)

	out, err = executeCommand(t, "--config", cfg, "search", "--json", "--progress", "math")
	require.Error(t, err)
	var resp models.RecommendationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, services.FallbackAnswer, resp.AISuggestion)
	assert.Empty(t, resp.Courses)
	assert.Nil(t, resp.ProgressData)
}

func TestSearchCommand_RequiresQuery(t *testing.T) {
	cfg := writeTestConfig(t, "")
	_, err := executeCommand(t, "--config", cfg, "search")
	assert.Error(t, err)
}

func TestHistoryAndCostCommands(t *testing.T) {
	cfg := writeTestConfig(t, filepath.Join(t.TempDir(), "rightsteps.db"))

	out, err := executeCommand(t, "--config", cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No search history found.")

	_, err = executeCommand(t, "--config", cfg, "search", "science", "tutor")
	require.Error(t, err)

	out, err = executeCommand(t, "--config", cfg, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "science tutor")

	out, err = executeCommand(t, "--config", cfg, "cost", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Cost:          $0.000000")

	out, err = executeCommand(t, "--config", cfg, "cost", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No cost logs found.")
}

func TestDoctorCommand(t *testing.T) {
	out, err := executeCommand(t, "--config", writeTestConfig(t, ""), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Database not configured")
	assert.Contains(t, out, "Completion provider: none")
	assert.Contains(t, out, "Catalog: 18 courses, 12 tutors.")

	out, err = executeCommand(t, "--config", writeTestConfig(t, filepath.Join(t.TempDir(), "doctor.db")), "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Database connection successful.")
	assert.Contains(t, out, "AI spend to date: $0.000000")
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "courses")
	assert.ErrorContains(t, err, "failed to load config")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rag:\n  provider: llama\n"), 0o644))
	_, err = executeCommand(t, "--config", path, "courses")
	assert.ErrorContains(t, err, "invalid config")
}

func TestRootCommand_MissingKeyDisablesProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\nrag:\n  provider: openai\n"), 0o644))
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("RIGHTSTEPS_OPENAI_API_KEY", "")

	out, err := executeCommand(t, "--config", path, "courses", "--category", "Mathematics")
	require.NoError(t, err)
	assert.Contains(t, out, "GCSE Mathematics Higher")

	out, err = executeCommand(t, "--config", path, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Completion provider: openai")
	assert.Contains(t, out, "is disabled.")
	assert.Contains(t, out, "Circuit breaker: closed.")

	out, err = executeCommand(t, "--config", path, "search", "math", "help")
	assert.ErrorIs(t, err, services.ErrProviderDisabled)
	assert.Contains(t, out, services.FallbackAnswer)
}
