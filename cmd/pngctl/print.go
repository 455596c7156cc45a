package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/png/printer"
)

var (
	printShowCRC   bool
	printShowFlags bool
	printMaxBytes  int
)

func init() {
	cmd := newPrintCmd()
	cmd.Flags().BoolVar(&printShowCRC, "crc", false, "Show each chunk's CRC")
	cmd.Flags().BoolVar(&printShowFlags, "flags", false, "Show the type code properties")
	cmd.Flags().IntVar(&printMaxBytes, "max-bytes", printer.DefaultOptions().MaxDataBytes,
		"Print a byte count instead of payloads this large (0 = always print)")
	rootCmd.AddCommand(cmd)
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <file>",
		Short: "Print every chunk of a file",
		Long: `The print command lists the signature and every chunk in file order.

Example:
  pngctl print image.png
  pngctl print image.png --crc --flags
  pngctl print image.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(args)
		},
	}
	return cmd
}

func runPrint(args []string) error {
	d, err := openDocument(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	opts := printer.DefaultOptions()
	opts.ShowCRC = printShowCRC
	opts.ShowFlags = printShowFlags
	opts.MaxDataBytes = printMaxBytes

	return newPrinter(opts).PrintDocument(d)
}
