package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/png"
)

var diffExitCode bool

func init() {
	cmd := newDiffCmd()
	cmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Return an error when the files differ")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare the chunks of two files",
		Long: `The diff command lists chunks present in one file but not the other.
Chunks are compared by type and payload; their order is ignored.

Example:
  pngctl diff before.png after.png
  pngctl diff before.png after.png --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
	return cmd
}

type diffEntry struct {
	Index  int    `json:"index"`
	Type   string `json:"type"`
	Length uint32 `json:"length"`
	CRC    uint32 `json:"crc"`
}

func toDiffEntries(deltas []png.ChunkDelta) []diffEntry {
	out := make([]diffEntry, 0, len(deltas))
	for _, d := range deltas {
		out = append(out, diffEntry{
			Index:  d.Index,
			Type:   d.Chunk.Type().String(),
			Length: d.Chunk.Length(),
			CRC:    d.Chunk.CRC(),
		})
	}
	return out
}

func runDiff(args []string) error {
	path1 := args[0]
	path2 := args[1]

	a, err := openDocument(path1)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path1, err)
	}
	b, err := openDocument(path2)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path2, err)
	}

	res := png.Diff(a, b)

	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"file1":     path1,
			"file2":     path2,
			"identical": res.Empty(),
			"removed":   toDiffEntries(res.Removed),
			"added":     toDiffEntries(res.Added),
		}); err != nil {
			return err
		}
	} else {
		printInfo("Comparing %s -> %s\n\n", path1, path2)
		if res.Empty() {
			printInfo("No differences\n")
		}
		for _, d := range res.Removed {
			printInfo("- [%d] %s\n", d.Index, d.Chunk)
		}
		for _, d := range res.Added {
			printInfo("+ [%d] %s\n", d.Index, d.Chunk)
		}
		if !res.Empty() {
			printInfo("\n%d removed, %d added\n", len(res.Removed), len(res.Added))
		}
	}

	if diffExitCode && !res.Empty() {
		return fmt.Errorf("files differ")
	}
	return nil
}
