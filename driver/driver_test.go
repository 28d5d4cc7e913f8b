package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skx/toycc/diag"
)

func TestResolvedOutputPathStripsExtension(t *testing.T) {
	opts := Options{InputPath: "/tmp/prog.toy"}
	require.Equal(t, "/tmp/prog", opts.resolvedOutputPath())
}

func TestResolvedOutputPathHonorsExplicitOutput(t *testing.T) {
	opts := Options{InputPath: "/tmp/prog.toy", OutputPath: "/tmp/custom"}
	require.Equal(t, "/tmp/custom", opts.resolvedOutputPath())
}

func TestResolvedOutputPathWithNoExtension(t *testing.T) {
	opts := Options{InputPath: "/tmp/prog"}
	require.Equal(t, "/tmp/prog.out", opts.resolvedOutputPath())
}

func TestRunSurfacesCompileErrorsBeforeInvokingToolchain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toy")
	require.NoError(t, os.WriteFile(path, []byte("x = 1;"), 0o644))

	err := Run(Options{InputPath: path, OutputPath: filepath.Join(dir, "bad")})
	require.Error(t, err)

	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	require.Equal(t, diag.UndefinedVariable, derr.Kind)
}

func TestRunSurfacesMissingInputFile(t *testing.T) {
	err := Run(Options{InputPath: "/nonexistent/does-not-exist.toy"})
	require.Error(t, err)
}
