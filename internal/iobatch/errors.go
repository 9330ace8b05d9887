package iobatch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gningest/pkg/errcode"
)

// BatchFailedSourcesError reports that some sources of a batch run did
// not produce a successful envelope.
func BatchFailedSourcesError(failed, total int) error {
	msg := `<em>%d</em> of <em>%d</em> sources failed

Check the log for details`
	return &gn.Error{
		Code: errcode.BatchFailedSourcesError,
		Msg:  msg,
		Vars: []any{failed, total},
		Err:  fmt.Errorf("%d of %d sources failed", failed, total),
	}
}
