package main

import (
	"os"
	"testing"
)

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name           string
		extraType      string // appended before validating, if set
		strict         bool
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "valid file",
			wantContain:    []string{"Signature valid", "3 chunks, all checksums valid"},
			wantNotContain: []string{"reserved bit"},
		},
		{
			name:        "reserved bit warning",
			extraType:   "rust",
			wantContain: []string{"chunk 3 (rust): reserved bit set"},
		},
		{
			name:      "reserved bit strict",
			extraType: "rust",
			strict:    true,
			wantErr:   true,
		},
		{
			name:        "valid file as JSON",
			json:        true,
			wantContain: []string{`"valid": true`, `"chunks": 3`},
		},
		{
			name:        "strict failure as JSON",
			extraType:   "rust",
			strict:      true,
			json:        true,
			wantErr:     true,
			wantContain: []string{`"valid": false`, "reserved bit set"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			path := testFilePath(t)
			if tt.extraType != "" {
				if _, err := captureOutput(t, func() error {
					return runEncode([]string{path, tt.extraType, "x"})
				}); err != nil {
					t.Fatalf("runEncode() error = %v", err)
				}
			}
			jsonOut = tt.json
			validateStrict = tt.strict

			output, err := captureOutput(t, func() error {
				return runValidate([]string{path})
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("runValidate() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
			}
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestValidateTruncatedFile(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := testFilePath(t)
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf[:len(buf)-3], 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := captureOutput(t, func() error {
		return runValidate([]string{path})
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"valid": false`, "trailing data"})
}
