package svg

import "errors"

// ErrNoPaths is returned when a document contains no drawable path.
var ErrNoPaths = errors.New("svg: document has no paths")
