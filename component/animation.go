package component

// Animation advances a frame counter over an ordered image sequence. The
// images themselves stay with the renderer; an Animation only knows its key
// and how many images the sequence has, and reports which one to show.
type Animation struct {
	Key    string
	Images int
	ImgDur int
	Loop   bool

	// Frame counts ticks, not images. Img() maps it onto the sequence.
	Frame int
	done  bool
}

// AnimationSource hands out fresh animation instances by key, e.g.
// "player/run" or "particle/leaf".
type AnimationSource interface {
	NewAnimation(key string) *Animation
}

// NewAnimation creates an animation over images frames, each shown for
// imgDur ticks (defaults to 5 if <= 0).
func NewAnimation(key string, images, imgDur int, loop bool) *Animation {
	if imgDur <= 0 {
		imgDur = 5
	}
	if images < 1 {
		images = 1
	}
	return &Animation{Key: key, Images: images, ImgDur: imgDur, Loop: loop}
}

// Copy returns an independent instance starting from frame zero.
func (a *Animation) Copy() *Animation {
	if a == nil {
		return nil
	}
	return NewAnimation(a.Key, a.Images, a.ImgDur, a.Loop)
}

func (a *Animation) span() int {
	return a.ImgDur * a.Images
}

// Update advances one tick. Looping animations wrap; one-shot animations
// clamp on the last tick and report Done from then on.
func (a *Animation) Update() {
	if a == nil {
		return
	}
	if a.Loop {
		a.Frame = (a.Frame + 1) % a.span()
		return
	}
	a.Frame = min(a.Frame+1, a.span()-1)
	if a.Frame >= a.span()-1 {
		a.done = true
	}
}

// Done reports whether a one-shot animation has played through.
func (a *Animation) Done() bool {
	return a != nil && a.done
}

// Img returns the index of the image to draw for the current frame.
func (a *Animation) Img() int {
	if a == nil || a.ImgDur <= 0 {
		return 0
	}
	idx := a.Frame / a.ImgDur
	if idx >= a.Images {
		idx = a.Images - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
