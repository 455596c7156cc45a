package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeOutput string

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().StringVarP(&removeOutput, "output", "o", "", "Write the result here instead of overwriting <file>")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <file> <chunk-type>",
		Short: "Remove a chunk",
		Long: `The remove command deletes the first chunk of the given type, prints
it, and rewrites the file.

Example:
  pngctl remove image.png ruSt
  pngctl remove image.png ruSt -o clean.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	path := args[0]
	chunkType := args[1]

	d, err := openDocument(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	removed, err := d.RemoveChunk(chunkType)
	if err != nil {
		return fmt.Errorf("failed to remove chunk: %w", err)
	}

	if err := saveDocument(d, path, removeOutput); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"removed": removed.Type().String(),
			"length":  removed.Length(),
			"data":    removed.DataString(),
			"chunks":  d.Len(),
		})
	}
	printInfo("Removed: %s\n", removed)
	return nil
}
