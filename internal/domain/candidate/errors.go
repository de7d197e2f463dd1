package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrUnreadableCV      = errors.New("the CV could not be read")
	ErrAlreadyDecided    = errors.New("candidate has already been accepted or rejected")
)
