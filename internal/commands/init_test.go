package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "grana-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "grana")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/grana")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runGrana(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrana(t, "init", dir)
	require.NoError(t, err)

	for _, d := range []string{"ledger", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrana(t, "init", dir, "--addr", ":9090")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "grana.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, ":9090")
	assert.Contains(t, contents, "dir: ledger")
	assert.Contains(t, contents, "level: info")
}

func TestInit_CustomLedgerDir(t *testing.T) {
	dir := t.TempDir()
	_, err := runGrana(t, "init", dir, "--ledger-dir", "journal")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "journal"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestServe_RequiresConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runGrana(t, "serve", "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "reading config")
}

func TestVersionFlag(t *testing.T) {
	out, err := runGrana(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
