package index

import (
	"errors"
	"fmt"
)

// ErrInconsistency is returned when a retraction does not line up with the
// indexed state. It signals an ordering defect on the write path; the index
// itself is left unchanged, and the catalog recovers with a full rebuild.
var ErrInconsistency = errors.New("index inconsistency")

// InconsistencyError describes the posting and term where retraction and
// indexed state diverged.
type InconsistencyError struct {
	Posting Posting
	Term    string
	Reason  string
}

// Error implements the error interface.
func (e *InconsistencyError) Error() string {
	if e.Term != "" {
		return fmt.Sprintf("index inconsistency: %s/%s term %q: %s",
			e.Posting.Collection, e.Posting.Record, e.Term, e.Reason)
	}
	return fmt.Sprintf("index inconsistency: %s/%s: %s",
		e.Posting.Collection, e.Posting.Record, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInconsistency) checks.
func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistency
}
