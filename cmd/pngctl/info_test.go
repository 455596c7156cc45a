package main

import (
	"testing"
)

func TestInfoCommand(t *testing.T) {
	tests := []struct {
		name        string
		json        bool
		wantContain []string
	}{
		{
			name: "info text",
			wantContain: []string{
				"Signature: 89 50 4e 47 0d 0a 1a 0a",
				"Chunks: 3 (2 critical, 1 ancillary)",
				"FrSt",
				"miDl",
				"LASt",
			},
		},
		{
			name:        "info as JSON",
			json:        true,
			wantContain: []string{`"chunks": 3`, `"critical": 2`, `"ancillary": 1`, `"type": "miDl"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json

			path := testFilePath(t)
			output, err := captureOutput(t, func() error {
				return runInfo([]string{path})
			})
			if err != nil {
				t.Fatalf("runInfo() error = %v\nOutput: %s", err, output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoCountsDuplicates(t *testing.T) {
	resetFlags()
	path := testFilePath(t)
	quiet = true
	for _, msg := range []string{"a", "bb"} {
		if err := runEncode([]string{path, "ruSt", msg}); err != nil {
			t.Fatal(err)
		}
	}
	quiet = false
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertContains(t, output, []string{`"type": "ruSt"`, `"count": 2`, `"bytes": 3`})
}
