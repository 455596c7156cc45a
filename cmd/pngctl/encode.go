package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/cmd/pngctl/logger"
	"github.com/joshuapare/pngkit/png"
)

var encodeOutput string

func init() {
	cmd := newEncodeCmd()
	cmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the result here instead of overwriting <file>")
	rootCmd.AddCommand(cmd)
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <file> <chunk-type> <message>",
		Short: "Hide a message in a new chunk",
		Long: `The encode command appends a chunk of the given type carrying the
message and rewrites the file.

The chunk type must be four ASCII letters. Use a lowercase first letter
(ancillary) and an uppercase third letter (valid reserved bit) so other
decoders ignore the chunk.

Example:
  pngctl encode image.png ruSt "hello there"
  pngctl encode image.png ruSt "hello there" -o copy.png`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	path := args[0]
	chunkType := args[1]
	message := args[2]

	typ, err := png.ParseTypeCode(chunkType)
	if err != nil {
		return err
	}
	if !typ.IsValid() {
		logger.Warn("reserved bit set", "type", typ.String())
		printVerbose("Warning: chunk type %s has an invalid reserved bit\n", typ)
	}

	d, err := openDocument(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}

	c := png.NewChunk(typ, []byte(message))
	d.AppendChunk(c)

	if err := saveDocument(d, path, encodeOutput); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"type":   typ.String(),
			"length": c.Length(),
			"crc":    c.CRC(),
			"chunks": d.Len(),
		})
	}
	printInfo("Encoded %d bytes into chunk %s\n", c.Length(), typ)
	return nil
}
