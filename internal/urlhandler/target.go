package urlhandler

// Target is one recap URL read from a target list.
type Target struct {
	URL  string // The URL exactly as written, surrounding whitespace removed
	Line int    // 1-based line number in the source
}
