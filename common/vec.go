package common

import "github.com/jakecoffman/cp"

// Vec is the float 2-vector used for positions and velocities.
type Vec = cp.Vector
