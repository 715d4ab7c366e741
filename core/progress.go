package core

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/smartystreets/logging"
)

type ProgressReporter struct {
	label  string
	logger *logging.Logger
}

func NewProgressReporter(label string) *ProgressReporter {
	return &ProgressReporter{label: label}
}

func (this *ProgressReporter) Report(completed, total int64) {
	this.logger.Printf("[INFO] %s %s", this.label, describeProgress(completed, total))
}

// describeProgress omits the total when the server did not announce a size.
func describeProgress(completed, total int64) string {
	if completed < 0 {
		completed = 0
	}
	if total <= 0 {
		return humanize.Bytes(uint64(completed))
	}
	return fmt.Sprintf("%s of %s", humanize.Bytes(uint64(completed)), humanize.Bytes(uint64(total)))
}
