package factcheck

import "fmt"

// Details returned to API clients.
const (
	DetailEmptyClaim = "Claim cannot be empty."
	DetailUpstream   = "Error fetching from Google Fact Check API"
)

// ValidationError reports a claim that cannot be searched.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// UpstreamError reports a failed call to the search API. StatusCode is zero
// when no response was received.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fact check API returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fact check API: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
