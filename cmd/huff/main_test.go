package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	type testRow struct {
		input        string
		compressed   string
		decompressed string
	}

	testData := [...]testRow{
		{"inputs/test.txt", "inputs/test_compressed.txt", "inputs/test_decompressed.txt"},
		{"data", "data_compressed", "data_decompressed"},
		{"a.b/c.tar", "a.b/c_compressed.tar", "a.b/c_decompressed.tar"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			require.Equal(t, row.compressed, compressedPath(row.input))
			require.Equal(t, row.decompressed, decompressedPath(row.compressed))
		})
	}
}

func writeInput(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_CompressDecompress(t *testing.T) {
	const content = "We the People of the United States, in Order to form a more perfect Union"
	path := writeInput(t, "constitution.txt", content)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{path}, &stdout, &stderr), stderr.String())
	require.FileExists(t, compressedPath(path))

	require.Equal(t, 0, run([]string{"-d", compressedPath(path)}, &stdout, &stderr), stderr.String())
	out, err := os.ReadFile(decompressedPath(compressedPath(path)))
	require.NoError(t, err)
	require.Equal(t, content, string(out))
	require.Contains(t, stderr.String(), "[INFO]")
}

func TestRun_Raw(t *testing.T) {
	for _, content := range []string{"", "a", "aaaa", "abracadabra"} {
		path := writeInput(t, "boundary.txt", content)

		var stdout, stderr bytes.Buffer
		require.Equal(t, 0, run([]string{"-raw", "-v", path}, &stdout, &stderr), stderr.String())
		out, err := os.ReadFile(decompressedPath(compressedPath(path)))
		require.NoError(t, err)
		require.Equal(t, content, string(out))
		require.True(t, strings.HasPrefix(stdout.String(), "Frequencies{\n"), stdout.String())
	}
}

func TestRun_Output(t *testing.T) {
	path := writeInput(t, "in.txt", "hello hello")
	archive := filepath.Join(filepath.Dir(path), "out.huf")
	restored := filepath.Join(filepath.Dir(path), "restored.txt")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-o", archive, path}, &stdout, &stderr), stderr.String())
	require.Equal(t, 0, run([]string{"-d", "-o", restored, archive}, &stdout, &stderr), stderr.String())
	out, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, "hello hello", string(out))
}

func TestRun_MissingFileContinues(t *testing.T) {
	good := writeInput(t, "good.txt", "abc")
	missing := filepath.Join(filepath.Dir(good), "boundarycase3.txt")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{missing, good}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "[ERROR] "+missing)
	require.FileExists(t, compressedPath(good))
}

func TestRun_BadUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(nil, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-d", "-raw", "x"}, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-o", "out", "x", "y"}, &stdout, &stderr))
	require.Equal(t, 2, run([]string{"-bogus"}, &stdout, &stderr))

	stdout.Reset()
	require.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	require.Equal(t, "huff (statichuff) "+version+"\n", stdout.String())
}
