package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/png/printer"
)

var decodeFull bool

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().BoolVar(&decodeFull, "full", false, "Print the payload regardless of its size")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <file> <chunk-type>",
		Short: "Print the message stored in a chunk",
		Long: `The decode command prints the first chunk of the given type.

Example:
  pngctl decode image.png ruSt
  pngctl decode image.png ruSt --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	path := args[0]
	chunkType := args[1]

	d, err := openDocument(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	opts := printer.DefaultOptions()
	if decodeFull {
		opts.MaxDataBytes = 0
	}
	if err := newPrinter(opts).PrintChunkByType(d, chunkType); err != nil {
		return fmt.Errorf("failed to decode chunk: %w", err)
	}
	return nil
}
