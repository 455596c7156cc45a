package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize a file's chunks",
		Long: `The info command parses a file and reports its size, chunk count,
critical and ancillary chunk counts, and how often each chunk type occurs.

Example:
  pngctl info image.png
  pngctl info image.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type typeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Bytes int    `json:"bytes"`
}

type fileInfo struct {
	File      string      `json:"file"`
	Signature string      `json:"signature"`
	Size      int         `json:"size"`
	Chunks    int         `json:"chunks"`
	Critical  int         `json:"critical"`
	Ancillary int         `json:"ancillary"`
	Invalid   int         `json:"invalid"`
	Types     []typeCount `json:"types"`
}

func runInfo(args []string) error {
	path := args[0]

	d, err := openDocument(path)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	hdr := d.Header()
	info := fileInfo{
		File:      path,
		Signature: fmt.Sprintf("% x", hdr[:]),
		Size:      d.Size(),
		Chunks:    d.Len(),
	}

	counts := make(map[string]*typeCount)
	for _, c := range d.Chunks() {
		t := c.Type()
		if t.IsCritical() {
			info.Critical++
		} else {
			info.Ancillary++
		}
		if !t.IsValid() {
			info.Invalid++
		}
		tc, ok := counts[t.String()]
		if !ok {
			tc = &typeCount{Type: t.String()}
			counts[t.String()] = tc
		}
		tc.Count++
		tc.Bytes += int(c.Length())
	}
	for _, tc := range counts {
		info.Types = append(info.Types, *tc)
	}
	sort.Slice(info.Types, func(i, j int) bool { return info.Types[i].Type < info.Types[j].Type })

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Signature: %s\n", info.Signature)
	if info.Size < 1024 {
		printInfo("  Size: %d bytes\n", info.Size)
	} else if info.Size < 1024*1024 {
		printInfo("  Size: %.1f KB\n", float64(info.Size)/1024)
	} else {
		printInfo("  Size: %.1f MB\n", float64(info.Size)/(1024*1024))
	}
	printInfo("  Chunks: %d (%d critical, %d ancillary)\n", info.Chunks, info.Critical, info.Ancillary)
	if info.Invalid > 0 {
		printInfo("  Reserved bit set: %d\n", info.Invalid)
	}

	printInfo("\nChunk Types:\n")
	for _, tc := range info.Types {
		printInfo("  %s  %4d  %d bytes\n", tc.Type, tc.Count, tc.Bytes)
	}
	return nil
}
