package main

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/samcharles93/toksum/pkg/toksum"
)

// newProgress returns a progress option for a batch of total files, plus a
// finish func to call once the batch is done. Both are no-ops when the
// progress bar is suppressed.
func newProgress(total int, description string) (toksum.Option, func()) {
	if quiet || total == 0 {
		return toksum.WithProgress(nil), func() {}
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	opt := toksum.WithProgress(func(string) {
		_ = bar.Add(1)
	})
	return opt, func() { _ = bar.Finish() }
}
