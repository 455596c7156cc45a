package main

import (
	"strings"
	"testing"
)

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name           string
		chunkType      string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "decode first chunk",
			chunkType:   "FrSt",
			wantContain: []string{"Chunk{type: FrSt, data: 'I am the first chunk', len: 20}"},
		},
		{
			name:           "decode middle chunk",
			chunkType:      "miDl",
			wantContain:    []string{"I am another chunk"},
			wantNotContain: []string{"FrSt", "LASt"},
		},
		{
			name:        "decode as JSON",
			chunkType:   "LASt",
			json:        true,
			wantContain: []string{`"type": "LASt"`, `"text": "I am the last chunk"`},
		},
		{
			name:      "missing chunk type",
			chunkType: "ruSt",
			wantErr:   true,
		},
		{
			name:      "type matching is case sensitive",
			chunkType: "frst",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json

			path := testFilePath(t)
			output, err := captureOutput(t, func() error {
				return runDecode([]string{path, tt.chunkType})
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runDecode() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.wantErr {
				return
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestDecodeLargePayload(t *testing.T) {
	resetFlags()
	path := testFilePath(t)
	msg := strings.Repeat("x", 100)

	if _, err := captureOutput(t, func() error {
		return runEncode([]string{path, "ruSt", msg})
	}); err != nil {
		t.Fatalf("runEncode() error = %v", err)
	}

	output, err := captureOutput(t, func() error {
		return runDecode([]string{path, "ruSt"})
	})
	if err != nil {
		t.Fatalf("runDecode() error = %v", err)
	}
	assertContains(t, output, []string{"[.. 100 bytes ..]"})

	decodeFull = true
	output, err = captureOutput(t, func() error {
		return runDecode([]string{path, "ruSt"})
	})
	if err != nil {
		t.Fatalf("runDecode() error = %v", err)
	}
	assertContains(t, output, []string{msg})
}
