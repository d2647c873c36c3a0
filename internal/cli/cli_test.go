package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffpack/errs"
	"github.com/arloliu/huffpack/internal/hash"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(args ...string) cliResult {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)

	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInput(t *testing.T, dir string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func TestRun_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"text":   []byte(strings.Repeat("it was the best of times, it was the worst of times\n", 40)),
		"empty":  {},
		"single": bytes.Repeat([]byte{'z'}, 1000),
		"aaabb":  []byte("aaabb"),
	}

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, data)
			packed := filepath.Join(dir, "out.huff")
			restored := filepath.Join(dir, "restored.txt")

			res := runCLI("-c", in, packed)
			require.Equal(t, ExitOK, res.code, res.stderr)
			require.Contains(t, res.stdout, "Original Size:")
			require.Contains(t, res.stdout, hash.Format(hash.Digest(data)))

			res = runCLI("-d", packed, restored)
			require.Equal(t, ExitOK, res.code, res.stderr)
			require.Contains(t, res.stdout, hash.Format(hash.Digest(data)))

			got, err := os.ReadFile(restored)
			require.NoError(t, err)
			require.Equal(t, len(data), len(got))
			require.True(t, bytes.Equal(data, got))
		})
	}
}

func TestRun_CompressReport(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte("aaabb"))
	out := filepath.Join(dir, "out.huff")

	res := runCLI("-c", in, out)
	require.Equal(t, ExitOK, res.code)
	require.Contains(t, res.stdout, "Original Size:    5 bytes")
	require.Contains(t, res.stdout, "Compressed Size:  1029 bytes")
	require.Contains(t, res.stdout, "Distinct Symbols: 2")
	require.Contains(t, res.stdout, "Average Code:     1.000 bits/symbol")
	require.Contains(t, res.stdout, "Body:             5 bits + 3 padding")
	require.Contains(t, res.stderr, "[INFO] compressing")

	info, err := os.Stat(out)
	require.NoError(t, err)
	require.Equal(t, int64(1029), info.Size())
}

func TestRun_EmptyInputReport(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, nil)
	out := filepath.Join(dir, "out.huff")

	res := runCLI("-c", in, out)
	require.Equal(t, ExitOK, res.code)
	require.Contains(t, res.stdout, "Compressed Size:  1028 bytes")
	require.Contains(t, res.stdout, "n/a (empty input)")
}

func TestRun_Quiet(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte("quiet please"))

	res := runCLI("-quiet", "-c", in, filepath.Join(dir, "out.huff"))
	require.Equal(t, ExitOK, res.code)
	require.Empty(t, res.stderr)
	require.NotEmpty(t, res.stdout)
}

func TestRun_Compare(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte(strings.Repeat("abracadabra ", 500)))

	res := runCLI("-quiet", "-compare", "-c", in, filepath.Join(dir, "out.huff"))
	require.Equal(t, ExitOK, res.code, res.stderr)
	for _, name := range []string{"Codec", "Huffman", "None", "Zstd", "S2", "LZ4"} {
		require.Contains(t, res.stdout, name)
	}
}

func TestRun_BigEndian(t *testing.T) {
	dir := t.TempDir()
	data := []byte("big-endian headers round trip too")
	in := writeInput(t, dir, data)
	packed := filepath.Join(dir, "out.huff")
	restored := filepath.Join(dir, "restored.txt")

	require.Equal(t, ExitOK, runCLI("-big-endian", "-c", in, packed).code)

	container, err := os.ReadFile(packed)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0, byte(len(data))}, container[:4])

	require.Equal(t, ExitOK, runCLI("-big-endian", "-d", packed, restored).code)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "missing output", args: []string{"-c", "in"}},
		{name: "unknown flag", args: []string{"-z", "in", "out"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(tt.args...)
			require.Equal(t, ExitUsage, res.code)
			require.Contains(t, res.stderr, "Usage:")
			require.Empty(t, res.stdout)
		})
	}

	t.Run("help", func(t *testing.T) {
		res := runCLI("-h")
		require.Equal(t, ExitUsage, res.code)
		require.Contains(t, res.stderr, "Usage:")
	})
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.huff")

	for _, mode := range []string{"-c", "-d"} {
		t.Run(mode, func(t *testing.T) {
			res := runCLI(mode, filepath.Join(dir, "missing.txt"), out)
			require.Equal(t, ExitError, res.code)
			require.Contains(t, res.stderr, "[ERROR]")
			require.Contains(t, res.stderr, "i/o error")
			require.NoFileExists(t, out)
		})
	}
}

func TestRun_CorruptContainerLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte("this is not a container"))
	out := filepath.Join(dir, "restored.txt")

	res := runCLI("-d", in, out)
	require.Equal(t, ExitError, res.code)
	require.Contains(t, res.stderr, "truncated input")
	require.NoFileExists(t, out)
}

func TestRun_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte("data"))

	res := runCLI("-c", in, filepath.Join(dir, "no-such-dir", "out.huff"))
	require.Equal(t, ExitError, res.code)
	require.Contains(t, res.stderr, "i/o error")
}

func TestWriteFile_RemovesOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.bin")

	err := writeFile(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errs.ErrIO
	})
	require.ErrorIs(t, err, errs.ErrIO)
	require.NoFileExists(t, path)
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("digest of the bytes on disk")
	path := writeInput(t, dir, data)

	sum, err := digestFile(path)
	require.NoError(t, err)
	require.Equal(t, hash.Digest(data), sum)

	_, err = digestFile(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, errs.ErrIO)
}
