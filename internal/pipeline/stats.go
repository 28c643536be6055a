package pipeline

// Stats aggregates the outcome of one batch.
type Stats struct {
	Total       int // conversions attempted (and dry-run candidates)
	Converted   int
	Failed      int // load/encoder/encode failures
	Skipped     int // benign: non-input file arguments, unwalkable directories
	Missing     int // benign: unresolvable path arguments
	Interrupted int // cancelled before conversion started
}

// ExitCode maps batch outcome to process exit status: benign skips keep
// the status at zero, any real conversion failure makes the run
// scriptably non-zero.
func (s Stats) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
