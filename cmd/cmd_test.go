package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ACEGUIDE_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aceguide")
}

func TestDrugsList(t *testing.T) {
	out, err := execute(t, "drugs", "list")
	require.NoError(t, err)
	for _, name := range []string{"Lisinopril", "Enalapril", "Ramipril", "Captopril", "Benazepril"} {
		assert.Contains(t, out, name)
	}
}

func TestDrugsShowIsCaseInsensitive(t *testing.T) {
	out, err := execute(t, "drugs", "show", "RAMIPRIL")
	require.NoError(t, err)
	assert.Contains(t, out, "Ramipril")
	assert.Contains(t, out, "Half-life")
}

func TestDrugsShowUnknown(t *testing.T) {
	_, err := execute(t, "drugs", "show", "aspirin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "aspirin")
}

func TestExportMarkdownToStdout(t *testing.T) {
	out, err := execute(t, "export", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Mechanism of Action")
}

func TestExportHTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.html")
	_, err := execute(t, "export", "--format", "html", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")

	// flags keep their values between executions
	require.NoError(t, exportCmd.Flags().Set("out", ""))
	require.NoError(t, exportCmd.Flags().Set("format", "markdown"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "export", "--format", "pdf")
	assert.Error(t, err)
	require.NoError(t, exportCmd.Flags().Set("format", "markdown"))
}
