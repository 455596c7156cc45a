package main

import (
	"path/filepath"
	"testing"
)

func TestRemoveCommand(t *testing.T) {
	tests := []struct {
		name        string
		chunkType   string
		json        bool
		wantErr     bool
		wantContain []string
		wantOrder   []string
	}{
		{
			name:        "remove middle chunk",
			chunkType:   "miDl",
			wantContain: []string{"Removed: Chunk{type: miDl, data: 'I am another chunk', len: 18}"},
			wantOrder:   []string{"FrSt", "LASt"},
		},
		{
			name:        "remove as JSON",
			chunkType:   "FrSt",
			json:        true,
			wantContain: []string{`"removed": "FrSt"`, `"chunks": 2`},
			wantOrder:   []string{"miDl", "LASt"},
		},
		{
			name:      "missing chunk type",
			chunkType: "ruSt",
			wantErr:   true,
			wantOrder: []string{"FrSt", "miDl", "LASt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json

			path := testFilePath(t)
			output, err := captureOutput(t, func() error {
				return runRemove([]string{path, tt.chunkType})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runRemove() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.json && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)

			chunks := readTestFile(t, path).Chunks()
			if len(chunks) != len(tt.wantOrder) {
				t.Fatalf("file has %d chunks, want %d", len(chunks), len(tt.wantOrder))
			}
			for i, want := range tt.wantOrder {
				if got := chunks[i].Type().String(); got != want {
					t.Errorf("chunk %d = %s, want %s", i, got, want)
				}
			}
		})
	}
}

func TestRemoveFirstOfDuplicates(t *testing.T) {
	resetFlags()
	path := testFilePath(t)

	for _, msg := range []string{"one", "two"} {
		if _, err := captureOutput(t, func() error {
			return runEncode([]string{path, "ruSt", msg})
		}); err != nil {
			t.Fatalf("runEncode() error = %v", err)
		}
	}

	output, err := captureOutput(t, func() error {
		return runRemove([]string{path, "ruSt"})
	})
	if err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}
	assertContains(t, output, []string{"data: 'one'"})

	c, err := readTestFile(t, path).ChunkByType("ruSt")
	if err != nil {
		t.Fatalf("second chunk missing: %v", err)
	}
	if got := string(c.Data()); got != "two" {
		t.Errorf("remaining payload = %q, want %q", got, "two")
	}
}

func TestRemoveOutputFlag(t *testing.T) {
	resetFlags()
	path := testFilePath(t)
	out := filepath.Join(t.TempDir(), "out.png")
	removeOutput = out

	if _, err := captureOutput(t, func() error {
		return runRemove([]string{path, "LASt"})
	}); err != nil {
		t.Fatalf("runRemove() error = %v", err)
	}

	if got := readTestFile(t, path).Len(); got != 3 {
		t.Errorf("source file changed: %d chunks", got)
	}
	if got := readTestFile(t, out).Len(); got != 2 {
		t.Errorf("output file has %d chunks, want 2", got)
	}
}
