package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runFib(t, binaryPath, home, "", "read", "10", "--plain")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "55\n", stdout)

	stdout, stderr, err = runFib(t, binaryPath, home, "open\nseek 93\nread\nwrite\nclose\n", "session")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "F(93) = 12200160415121876738 (20 digits)")

	reportPath := filepath.Join(home, "bench.toml")
	_, stderr, err = runFib(t, binaryPath, home, "", "bench", "--from", "0", "--to", "30", "--out", reportPath, "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Equal(t, 31, strings.Count(string(report), "[[samples]]"))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "fib-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/fib")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build fib binary: %s", string(output))
	return binaryPath
}

func runFib(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
