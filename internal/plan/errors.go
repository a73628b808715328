package plan

import "errors"

// ErrInvalidInput indicates a planner argument that is not strictly positive,
// or a part count below two. Caller's fault; never retried.
var ErrInvalidInput = errors.New("invalid planner input")

// ErrDurationTooSmall indicates the computed chunk duration rounds to under
// one second. The combination of bitrate and size budget is infeasible.
var ErrDurationTooSmall = errors.New("calculated chunk duration is less than one second")
