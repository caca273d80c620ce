package htmltag

import (
	"errors"
	"fmt"
)

var (
	// ErrBookmarkLimitExceeded is returned by Processor.SetBookmark once the
	// combined count of named and internal bookmarks would exceed
	// Processor.BookmarkLimit.
	ErrBookmarkLimitExceeded = errors.New("htmltag: bookmark limit exceeded")

	// ErrBookmarkUnavailable is returned by Processor.SetBookmark when the
	// processor isn't positioned on a token (Ready, Complete or
	// IncompleteInput),
	// so there is nothing to bookmark.
	ErrBookmarkUnavailable = errors.New("htmltag: no current token to bookmark")
)

// DoctypeError reports why the DOCTYPE parse state machine forced quirks
// mode. ParseDoctype itself only returns (*DoctypeInfo, bool) per the
// boolean error channel the rest of the package uses (§4.5) — malformed
// input still yields an info, not an error — but newDoctypeInfo records the
// specific reason as a *DoctypeError on DoctypeInfo.Err, recoverable with
// errors.As, in place of the source's early-return gotos.
type DoctypeError struct {
	Name   string
	Reason string
}

func (e *DoctypeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("htmltag: doctype: %s", e.Reason)
	}
	return fmt.Sprintf("htmltag: doctype %q: %s", e.Name, e.Reason)
}

func (e *DoctypeError) Is(target error) bool {
	var de *DoctypeError
	if errors.As(target, &de) {
		return e.Reason == de.Reason
	}
	return false
}
