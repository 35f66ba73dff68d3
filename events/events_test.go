package events

import "testing"

func TestQueueDrain(t *testing.T) {
	var q Queue
	PlaySound(&q, SoundJump)
	Shake(&q, 16)
	q.Emit(Event{Kind: KindSound, Name: SoundHit})

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Name != SoundJump || got[1].Kind != KindShake || got[1].Magnitude != 16 || got[2].Name != SoundHit {
		t.Fatalf("unexpected order or payload: %+v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestNilSinkIsNoop(t *testing.T) {
	PlaySound(nil, SoundDash)
	Shake(nil, 4)
	var q *Queue
	q.Push(Event{})
	if q.Drain() != nil {
		t.Fatalf("nil queue should drain nothing")
	}
}
