package ui

// RemovalDoneMsg reports the outcome of a batch of frame removals triggered
// from the review TUI
type RemovalDoneMsg struct {
	Removed []string // paths actually deleted
	Failed  int
	Err     error // first error encountered, nil when Failed == 0
}
