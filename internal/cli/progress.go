package cli

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// NewScanProgressBar builds the progress bar shown while a batch is read.
func NewScanProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Lecture OCR...[reset]"),
	)
}
