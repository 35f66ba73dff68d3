package effects

// Pool is an unordered set of short-lived values. Members expire during
// Update but stay visible to Each until Compact runs, so a member is still
// drawn on the frame it expires. Compact is called once per frame after
// drawing.
type Pool[T any] struct {
	items   []T
	expired []bool
}

func (p *Pool[T]) Spawn(v T) {
	p.items = append(p.items, v)
	p.expired = append(p.expired, false)
}

// Update calls fn for every live member present when the call starts;
// members spawned meanwhile wait for the next frame. fn returns true to
// expire the member.
func (p *Pool[T]) Update(fn func(*T) bool) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.expired[i] {
			continue
		}
		v := p.items[i]
		gone := fn(&v)
		p.items[i] = v
		if gone {
			p.expired[i] = true
		}
	}
}

// Each visits every member, including those expired since the last Compact.
func (p *Pool[T]) Each(fn func(*T)) {
	for i := range p.items {
		fn(&p.items[i])
	}
}

// Compact drops expired members, preserving the order of the rest.
func (p *Pool[T]) Compact() {
	w := 0
	for i := range p.items {
		if p.expired[i] {
			continue
		}
		p.items[w] = p.items[i]
		p.expired[w] = false
		w++
	}
	var zero T
	for i := w; i < len(p.items); i++ {
		p.items[i] = zero
	}
	p.items = p.items[:w]
	p.expired = p.expired[:w]
}

// Len counts all members, expired or not.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Live counts members that have not expired.
func (p *Pool[T]) Live() int {
	n := 0
	for _, e := range p.expired {
		if !e {
			n++
		}
	}
	return n
}

func (p *Pool[T]) Clear() {
	p.items = nil
	p.expired = nil
}
