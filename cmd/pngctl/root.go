package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/cmd/pngctl/logger"
	"github.com/joshuapare/pngkit/png"
	"github.com/joshuapare/pngkit/png/printer"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	debugLog    bool
	logFile     string
	maxFileSize int64

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "pngctl",
	Short: "Inspect and edit the chunks of PNG files",
	Long: `pngctl reads a PNG file as a sequence of typed chunks. It can hide a
message in a new chunk, print or remove chunks by type, and validate,
summarize or compare files. Every write re-encodes the whole file and
replaces it atomically.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closeFn, err := logger.Init(logger.Options{
			Enabled: debugLog || logFile != "",
			LogFile: logFile,
			Level:   slog.LevelDebug,
		})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		closeLog = closeFn
		logger.Debug("command start", "cmd", cmd.Name(), "args", args)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append JSON debug logs to this file")
	rootCmd.PersistentFlags().
		Int64Var(&maxFileSize, "max-size", 0, "Refuse files larger than this many bytes (0 = library default, -1 = no limit)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		_ = closeLog()
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// openDocument loads and parses path, honoring --max-size.
func openDocument(path string) (*png.Document, error) {
	printVerbose("Opening file: %s\n", path)
	d, err := png.Open(path, png.OpenOptions{MaxFileSize: maxFileSize})
	if err != nil {
		logger.Debug("open failed", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("document parsed", "path", path, "chunks", d.Len(), "size", d.Size())
	return d, nil
}

// saveDocument writes d to output, or back to path when output is empty.
func saveDocument(d *png.Document, path, output string) error {
	dest := path
	if output != "" {
		dest = output
	}
	printVerbose("Writing %d bytes to %s\n", d.Size(), dest)
	if err := png.WriteFile(dest, d); err != nil {
		return err
	}
	logger.Info("document written", "path", dest, "chunks", d.Len(), "size", d.Size())
	return nil
}

// newPrinter returns a printer writing to stdout that honors --json.
func newPrinter(opts printer.Options) *printer.Printer {
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts)
}
