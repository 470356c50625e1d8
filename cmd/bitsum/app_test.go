package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iamNilotpal/gf2/internal/serialize"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"-log-level", "error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func checkFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "check.txt")
	require.NoError(t, os.WriteFile(path, []byte("123456789"), 0644))
	return path
}

func TestSumCommand(t *testing.T) {
	path := checkFile(t)

	code, out, _ := runCLI(t, "sum", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "cbf43926  "+path+"\n", out)

	code, out, _ = runCLI(t, "sum", "-algo", "crc64-xz", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "995dc9bbdf1939fa  "+path+"\n", out)

	code, out, _ = runCLI(t, "sum", "-algo", "crc8-smbus", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "f4  "+path+"\n", out)
}

func TestSumExpect(t *testing.T) {
	path := checkFile(t)

	code, _, _ := runCLI(t, "sum", "-expect", "0xCBF43926", path)
	assert.Equal(t, exitOK, code)

	code, out, errOut := runCLI(t, "sum", "-expect", "deadbeef", path)
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "cbf43926  "+path+"\n", out)
	assert.Contains(t, errOut, "mismatch")

	code, _, _ = runCLI(t, "sum", "-expect", "zz", path)
	assert.Equal(t, exitUsage, code)
}

func TestSumUnknownAlgorithm(t *testing.T) {
	code, _, errOut := runCLI(t, "sum", "-algo", "md5", checkFile(t))
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "md5")
}

func TestSumWithConfiguredAlgorithm(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bitsum.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
checksum:
  algorithm: crc16-modbus
algorithms:
  - name: crc16-modbus
    width: 16
    reflected: true
    poly: 0xA001
    init: 0xFFFF
    check: 0x4B37
`), 0644))

	path := checkFile(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-config", cfgPath, "-log-level", "error", "sum", path}, &stdout, &stderr)
	assert.Equal(t, exitOK, code, stderr.String())
	assert.Equal(t, "4b37  "+path+"\n", stdout.String())
}

func TestVerifyCommand(t *testing.T) {
	code, _, errOut := runCLI(t, "verify", "-trials", "200", "-seed", "3")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "PASSED: clmul-test/u32")
	assert.Contains(t, errOut, "PASSED: clmul-test-reversed/u32")
	assert.NotContains(t, errOut, "FAILED")
}

func TestVerifyJSON(t *testing.T) {
	code, out, _ := runCLI(t, "verify", "-trials", "50", "-seed", "11", "-json")
	require.Equal(t, exitOK, code)

	fields, err := serialize.UnMarshalJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "11", fields["seed"])
	assert.Equal(t, true, fields["passed"])
	assert.Len(t, fields["cases"], 8)
}

func TestAlgorithmsCommand(t *testing.T) {
	code, out, _ := runCLI(t, "algorithms")
	assert.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "cbf43926")
	assert.Contains(t, out, "995dc9bbdf1939fa")
}

func TestUsageErrors(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "usage")

	code, _, _ = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), "sum")
	assert.Equal(t, exitUsage, code)
}

func TestSumZstdInput(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	frame := enc.EncodeAll([]byte("123456789"), nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "check.txt.zst")
	require.NoError(t, os.WriteFile(path, frame, 0644))

	code, out, _ := runCLI(t, "sum", "-zstd", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "cbf43926  "+path+"\n", out)

	code, _, errOut := runCLI(t, "sum", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "no such file")
}
