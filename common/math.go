package common

import "github.com/jakecoffman/cp"

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	return cp.LerpConst(v, 0, step)
}

func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
