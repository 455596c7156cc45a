package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/pngkit/png"
)

// testFilePath writes a small document to a temp dir and returns its path.
// The document holds FrSt, miDl and LASt chunks in that order.
func testFilePath(t *testing.T) string {
	t.Helper()
	d := png.NewWithChunks(
		png.NewChunk(png.MustParseTypeCode("FrSt"), []byte("I am the first chunk")),
		png.NewChunk(png.MustParseTypeCode("miDl"), []byte("I am another chunk")),
		png.NewChunk(png.MustParseTypeCode("LASt"), []byte("I am the last chunk")),
	)
	path := filepath.Join(t.TempDir(), "test.png")
	if err := png.WriteFile(path, d); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// readTestFile parses the document at path.
func readTestFile(t *testing.T, path string) *png.Document {
	t.Helper()
	d, err := png.Open(path, png.OpenOptions{})
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return d
}

// resetFlags restores global and per-command flags to their defaults.
func resetFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	maxFileSize = 0
	encodeOutput = ""
	removeOutput = ""
	decodeFull = false
	printShowCRC = false
	printShowFlags = false
	printMaxBytes = png.DisplayThreshold
	validateStrict = false
	diffExitCode = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	// Drain concurrently so large outputs cannot block on a full pipe
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
