package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateStrict bool

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail when any chunk type has an invalid reserved bit")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check file structure and chunk type codes",
		Long: `The validate command parses the whole file, verifying the signature,
every frame length and every CRC. It then reports chunk types whose
reserved bit is set (third letter lowercase).

Structural errors always fail. Reserved bit findings are warnings unless
--strict is given.

Example:
  pngctl validate image.png
  pngctl validate image.png --strict
  pngctl validate image.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	printVerbose("Validating file: %s\n", path)

	result := map[string]interface{}{
		"file":   path,
		"strict": validateStrict,
	}

	d, err := openDocument(path)
	if err != nil {
		result["valid"] = false
		result["error"] = err.Error()
		if jsonOut {
			if jerr := printJSON(result); jerr != nil {
				return jerr
			}
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	var warnings []string
	if verr := d.Validate(); verr != nil {
		warnings = unjoin(verr)
	}
	valid := len(warnings) == 0 || !validateStrict

	result["valid"] = valid
	result["chunks"] = d.Len()
	result["warnings"] = warnings

	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printInfo("\nValidating %s...\n\n", path)
		printInfo("  ✓ Signature valid\n")
		printInfo("  ✓ %d chunks, all checksums valid\n", d.Len())
		for _, w := range warnings {
			printInfo("  ! %s\n", w)
		}
	}

	if !valid {
		return fmt.Errorf("validation failed: %d chunk(s) with reserved bit set", len(warnings))
	}
	return nil
}

// unjoin splits an errors.Join result into its messages.
func unjoin(err error) []string {
	var out []string
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
