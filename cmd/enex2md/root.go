package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avreen/enex2md/pkg/enex"
	"github.com/avreen/enex2md/pkg/enml"
	"github.com/avreen/enex2md/pkg/export"
)

var (
	inputFile string
	outputDir string
	include   string
	watch     bool
	verbose   bool
)

// rootCmd performs the conversion itself; there is no subcommand for it.
var rootCmd = &cobra.Command{
	Use:   "enex2md",
	Short: "Convert an ENEX note archive into markdown notes plus attachments",
	Long: `enex2md decodes an ENEX export archive and writes one markdown file per
note (with a front-matter header) under <out>/notes, and every attachment
under <out>/attachments. Attachments sharing a filename must carry identical
content; a collision aborts the run.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert(); err != nil {
			fatal("Conversion failed", err)
		}

		if watch {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := watchAndConvert(ctx, inputFile, debounceWindow, convert, slog.Default()); err != nil {
				fatal("Watch failed", err)
			}
		}
	},
}

// convert runs one full pass over the archive.
func convert() error {
	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	writer := export.NewWriter(export.Config{
		Path:   outputDir,
		Source: inputFile,
		Logger: slog.Default(),
	})
	if err := writer.Initialize(); err != nil {
		return err
	}

	err = enex.Parse(f, enml.NewParser(), func(note *enex.Note) error {
		ok, err := includeNote(include, note.Title)
		if err != nil {
			return err
		}
		if !ok {
			slog.Debug("note filtered out", "title", note.Title)
			return nil
		}
		return writer.Dump(note)
	})
	if err != nil {
		return err
	}

	if err := writer.WriteCatalog(); err != nil {
		return err
	}

	catalog := writer.Catalog()
	slog.Info("conversion complete", "notes", catalog.Notes, "attachments", len(catalog.Attachments))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Input ENEX archive")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory")
	rootCmd.Flags().StringVar(&include, "include", "", "Convert only notes whose title matches this glob")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Re-run the conversion whenever the archive changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.MarkFlagRequired("file")
	rootCmd.MarkFlagRequired("out")
}
