// SPDX-License-Identifier: MIT

package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cuauhtlidp/emd-optimizer/internal/cli"
	"github.com/Cuauhtlidp/emd-optimizer/report"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var invErr *cli.InvocationError
	require.True(t, errors.As(err, &invErr), "expected *InvocationError, got %T: %v", err, err)
	require.Equal(t, code, invErr.ExitCode)
}

func TestParseInvocation_Defaults(t *testing.T) {
	t.Parallel()

	inv, err := cli.ParseInvocation([]string{"-input", "points.csv"})
	require.NoError(t, err)
	require.Equal(t, cli.Invocation{
		InputPath: "points.csv",
		Format:    report.FormatText,
		LogLevel:  zerolog.WarnLevel,
		Header:    true,
	}, inv)
}

func TestParseInvocation_Invalid(t *testing.T) {
	t.Parallel()

	for name, args := range map[string][]string{
		"missing input": {},
		"unknown flag":  {"-input", "a.csv", "-bogus"},
		"positional":    {"-input", "a.csv", "extra"},
		"bad format":    {"-input", "a.csv", "-format", "xml"},
		"bad level":     {"-input", "a.csv", "-log-level", "loud"},
		"negative cap":  {"-input", "a.csv", "-max-iterations", "-1"},
		"negative eps":  {"-input", "a.csv", "-epsilon", "-0.1"},
	} {
		args := args
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := cli.ParseInvocation(args)
			requireExitCode(t, err, cli.ExitInvalidInvocation)
		})
	}
}

func TestParseInvocation_Help(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "-help"} {
		_, err := cli.ParseInvocation([]string{arg})
		requireExitCode(t, err, cli.ExitSuccess)
		require.Contains(t, err.Error(), "Usage: emd")
		require.Contains(t, err.Error(), "-input")
		require.Contains(t, err.Error(), "-max-iterations")
	}
}

func TestParseInvocation_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "emd.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
input: from-config.csv
format: json
log_level: debug
header: false
max_iterations: 50
epsilon: 1e-9
`), 0o600))

	inv, err := cli.ParseInvocation([]string{"-config", cfgPath, "-format", "cbor"})
	require.NoError(t, err)
	require.Equal(t, "from-config.csv", inv.InputPath)
	require.Equal(t, report.FormatCBOR, inv.Format, "explicit flag wins over config")
	require.Equal(t, zerolog.DebugLevel, inv.LogLevel)
	require.False(t, inv.Header)
	require.Equal(t, 50, inv.MaxIterations)
	require.Equal(t, 1e-9, inv.Epsilon)
}

func TestParseInvocation_ConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := cli.ParseInvocation([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	requireExitCode(t, err, cli.ExitConfigError)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("unknown_key: 1\n"), 0o600))
	_, err = cli.ParseInvocation([]string{"-config", bad})
	requireExitCode(t, err, cli.ExitConfigError)
}
