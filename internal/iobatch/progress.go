package iobatch

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar writing to w. When w is nil the
// bar is not shown.
func newProgressBar(total int, prefix string, w io.Writer) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	if w == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(w)
	}
	return bar.Start()
}
