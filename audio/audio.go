package audio

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/ninja/assets"
	"github.com/milk9111/ninja/events"
	"github.com/milk9111/ninja/logger"
)

const sampleRate = 44100

// Mixer owns one player per manifest sound.
type Mixer struct {
	ctx     *audio.Context
	players map[string]*audio.Player
	loops   []string
}

// New decodes every sound in the manifest. Sounds whose file is missing or
// unreadable are logged and stay silent.
func New(files *assets.Files, manifest *assets.Manifest) *Mixer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	m := &Mixer{ctx: ctx, players: make(map[string]*audio.Player)}

	names := make([]string, 0, len(manifest.Sounds))
	for name := range manifest.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := manifest.Sounds[name]
		p, err := m.load(files, spec)
		if err != nil {
			logger.Log.WithError(err).WithField("sound", name).Warn("sound unavailable")
			continue
		}
		p.SetVolume(spec.Volume)
		m.players[name] = p
		if spec.Loop {
			m.loops = append(m.loops, name)
		}
	}
	return m
}

func (m *Mixer) load(files *assets.Files, spec assets.SoundSpec) (*audio.Player, error) {
	data, err := files.ReadFile(spec.File)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav %q: %w", spec.File, err)
	}
	var src io.Reader = stream
	if spec.Loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	return m.ctx.NewPlayer(src)
}

// Play restarts the named sound.
func (m *Mixer) Play(name string) {
	p, ok := m.players[name]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		logger.Log.WithError(err).WithField("sound", name).Debug("rewind failed")
	}
	p.Play()
}

// StartLoops starts the looping ambience tracks.
func (m *Mixer) StartLoops() {
	for _, name := range m.loops {
		m.players[name].Play()
	}
}

// Handle plays the sound events of one tick.
func (m *Mixer) Handle(evts []events.Event) {
	for _, e := range evts {
		if e.Kind == events.KindSound {
			m.Play(e.Name)
		}
	}
}
