package effects

import "github.com/milk9111/ninja/common"

// Projectile flies horizontally until it hits something or times out.
type Projectile struct {
	Pos   common.Vec
	Speed float64
	Age   int
}
