// Package ocr wraps the external OCR collaborator. The rest of the
// application only sees the service.Recognizer interface: one opaque text
// per image, or an opaque failure.
package ocr

import (
	"context"
	"fmt"
	"strconv"
)

// Config holds the tesseract invocation settings.
type Config struct {
	Binary      string // binary name or absolute path; defaults to "tesseract"
	Language    string // tesseract language pack; defaults to "fra"
	TessdataDir string // optional tessdata override
	PSM         int    // page segmentation mode; 0 keeps tesseract's default
}

// Tesseract recognizes receipt images by executing the tesseract binary.
type Tesseract struct {
	runner Runner
	cfg    Config
}

// NewTesseract creates a recognizer with defaults filled in.
func NewTesseract(cfg Config) *Tesseract {
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "fra"
	}
	return &Tesseract{cfg: cfg, runner: execRunner{}}
}

// Recognize runs tesseract on one image and returns the raw text.
// tesseract <file> stdout -l <lang>
func (t *Tesseract) Recognize(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", t.cfg.Language}
	if t.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(t.cfg.PSM))
	}
	if t.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", t.cfg.TessdataDir)
	}

	out, _, err := t.runner.Run(ctx, t.cfg.Binary, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
