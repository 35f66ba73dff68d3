package events

// Kind identifies what the presentation layer should do with an event.
type Kind string

const (
	KindSound Kind = "sound"
	KindShake Kind = "shake"
)

// Sound names emitted by the simulation.
const (
	SoundJump  = "jump"
	SoundDash  = "dash"
	SoundHit   = "hit"
	SoundShoot = "shoot"
)

// Event is a fire-and-forget signal from the simulation.
type Event struct {
	Kind      Kind
	Name      string
	Magnitude float64
}

// Sink receives events. Emitters never wait on or query a sink.
type Sink interface {
	Emit(evt Event)
}

func PlaySound(s Sink, name string) {
	if s == nil {
		return
	}
	s.Emit(Event{Kind: KindSound, Name: name})
}

// Shake requests a screen shake of at least magnitude frames.
func Shake(s Sink, magnitude float64) {
	if s == nil {
		return
	}
	s.Emit(Event{Kind: KindShake, Magnitude: magnitude})
}

// Queue is a simple FIFO sink drained once per frame.
type Queue struct {
	items []Event
}

func (q *Queue) Emit(evt Event) {
	q.Push(evt)
}

// Push adds an event.
func (q *Queue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Queue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
