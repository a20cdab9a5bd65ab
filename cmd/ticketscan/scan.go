package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpetit/ticketscan/internal/cli"
	"github.com/mpetit/ticketscan/internal/engine"
	"github.com/mpetit/ticketscan/internal/model"
	"github.com/mpetit/ticketscan/internal/ocr"
	"github.com/mpetit/ticketscan/internal/parse"
	"github.com/mpetit/ticketscan/internal/storage"
)

// imageExts lists the admissible receipt photo formats.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".heif": true,
	".webp": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [files or directories...]",
		Short: "Scan receipt photos through OCR",
		Long: `Scan one or more receipt images, or whole directories of them, through
tesseract and store the parsed tickets.

Examples:
  # Scan individual photos
  ticketscan scan ticket1.jpg ticket2.jpg

  # Scan a whole folder
  ticketscan scan ~/Photos/tickets/

  # Scan with a glob
  ticketscan scan ~/Photos/tickets/*.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScan,
	}

	cmd.Flags().String("lang", "fra", "tesseract language pack")
	cmd.Flags().String("tesseract", "tesseract", "tesseract binary name or path")
	cmd.Flags().Int("psm", 0, "tesseract page segmentation mode (0: default)")

	_ = viper.BindPFlag("ocr.language", cmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag("ocr.binary", cmd.Flags().Lookup("tesseract"))
	_ = viper.BindPFlag("ocr.psm", cmd.Flags().Lookup("psm"))

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sources, err := collectSources(args)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("no image files found")
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	parser, err := parse.NewParser(parse.DefaultVocabulary())
	if err != nil {
		return fmt.Errorf("failed to build parser: %w", err)
	}

	recognizer := ocr.NewTesseract(ocr.Config{
		Binary:   viper.GetString("ocr.binary"),
		Language: viper.GetString("ocr.language"),
		PSM:      viper.GetInt("ocr.psm"),
	})

	slog.Info("🧾 Scanning receipts...", "count", len(sources))

	bar := cli.NewScanProgressBar(os.Stderr, len(sources))
	eng := engine.New(store, recognizer, parser)
	if err := eng.ScanBatch(ctx, sources, func(done, _ int) {
		_ = bar.Set(done)
	}); err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	return printScanSummary(ctx, store, sources)
}

// collectSources expands globs and directories into batch sources,
// admission-ordered, keeping only image files.
func collectSources(args []string) ([]model.Source, error) {
	var paths []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				matches = []string{pattern}
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
				continue
			}
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				slog.Warn("Skipping unreadable path", "path", match, "error", err)
				continue
			}
			if info.IsDir() {
				walked, walkErr := walkImages(match)
				if walkErr != nil {
					return nil, walkErr
				}
				paths = append(paths, walked...)
			} else {
				paths = append(paths, match)
			}
		}
	}

	var sources []model.Source
	for _, path := range paths {
		if !imageExts[strings.ToLower(filepath.Ext(path))] {
			slog.Debug("Skipping non-image file", "path", path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			slog.Warn("Skipping unreadable file", "path", path, "error", err)
			continue
		}
		sources = append(sources, model.Source{
			Name:    filepath.Base(path),
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return sources, nil
}

func walkImages(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return paths, nil
}

func printScanSummary(ctx context.Context, store *storage.SQLiteStorage, sources []model.Source) error {
	keys := make(map[string]bool, len(sources))
	for _, src := range sources {
		keys[src.Key()] = true
	}

	tickets, err := store.ListTickets(ctx)
	if err != nil {
		return err
	}
	engine.MarkDuplicates(tickets)

	var done, failed, duplicates int
	for _, t := range tickets {
		if !keys[t.SourceKey] {
			continue
		}
		switch t.Status {
		case model.StatusDone:
			done++
			if t.Duplicate {
				duplicates++
			}
		case model.StatusError:
			failed++
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("✅ %d tickets lus", done)))
	if duplicates > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("⚠️  %d doublons détectés", duplicates)))
	}
	if failed > 0 {
		fmt.Println(cli.FormatError(fmt.Sprintf("❌ %d lectures en erreur", failed)))
	}
	return nil
}
