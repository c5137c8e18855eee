package adjmat

import "errors"

// ErrTooManyVertices indicates a core.Graph has more vertices than MaxN
// supports.
var ErrTooManyVertices = errors.New("adjmat: too many vertices")
