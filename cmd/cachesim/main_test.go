package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, lines string) string {
	f, err := os.CreateTemp(t.TempDir(), "trace")
	require.NoError(t, err)
	_, err = f.WriteString(lines)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func captureStdout(t *testing.T, f func()) string {
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	f()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestRunSeedParamIsReproducible(t *testing.T) {
	trace := writeTrace(t, "0 1 1\n1 2 1\n2 1 1\n3 3 1\n4 1 1\n")

	run1 := captureStdout(t, func() {
		require.Equal(t, 0, run([]string{trace, "LRU", "2", "seed=42"}))
	})
	run2 := captureStdout(t, func() {
		require.Equal(t, 0, run([]string{trace, "LRU", "2", "seed=42"}))
	})
	require.Equal(t, run1, run2, "identical seeds should produce identical output")
}

func TestRunUnknownPolicyFails(t *testing.T) {
	trace := writeTrace(t, "0 1 1\n")
	require.Equal(t, 1, run([]string{trace, "NoSuchPolicy", "2"}))
}
