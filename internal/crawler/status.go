package crawler

import "fmt"

// Status classifies how a crawl ended. It is an outcome, not an error.
type Status int

const (
	// StatusOK means every reachable branch was exhausted within the limits.
	StatusOK Status = iota
	// StatusMaxTimeExceeded means at least one branch was skipped because the deadline passed.
	StatusMaxTimeExceeded
	// StatusMaxDepthReached means at least one branch was cut off at the depth ceiling.
	StatusMaxDepthReached
)

const (
	statusOKText              = "OK"
	statusMaxTimeExceededText = "MAX_TIME_EXCEEDED"
	statusMaxDepthReachedText = "MAX_DEPTH_REACHED"

	errorUnknownStatusFormat = "unknown crawl status %q"
)

// Combine merges two partial outcomes. A depth cut dominates a time cut,
// which dominates OK, independent of argument order.
func Combine(first Status, second Status) Status {
	if first.rank() >= second.rank() {
		return first
	}
	return second
}

func (status Status) rank() int {
	switch status {
	case StatusMaxDepthReached:
		return 2
	case StatusMaxTimeExceeded:
		return 1
	default:
		return 0
	}
}

// String returns the canonical upper-case name of the status.
func (status Status) String() string {
	switch status {
	case StatusMaxDepthReached:
		return statusMaxDepthReachedText
	case StatusMaxTimeExceeded:
		return statusMaxTimeExceededText
	default:
		return statusOKText
	}
}

// MarshalText encodes the status by name for JSON, XML and YAML documents.
func (status Status) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}

// UnmarshalText decodes a status previously produced by MarshalText.
func (status *Status) UnmarshalText(text []byte) error {
	parsed, parseError := ParseStatus(string(text))
	if parseError != nil {
		return parseError
	}
	*status = parsed
	return nil
}

// ParseStatus converts a canonical status name back into a Status.
func ParseStatus(text string) (Status, error) {
	switch text {
	case statusOKText:
		return StatusOK, nil
	case statusMaxTimeExceededText:
		return StatusMaxTimeExceeded, nil
	case statusMaxDepthReachedText:
		return StatusMaxDepthReached, nil
	default:
		return StatusOK, fmt.Errorf(errorUnknownStatusFormat, text)
	}
}
