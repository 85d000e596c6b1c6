package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/asteroids/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player plays gameplay cues through the system speaker
// It satisfies engine.AudioPlayer; until Start succeeds every cue reports failure
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	width   float64
	started bool
	muted   bool
	logger  zerolog.Logger
}

// NewPlayer creates an idle player panning across an arena of the given width
func NewPlayer(volume, arenaWidth float64, logger zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		width:  arenaWidth,
		logger: logger,
	}
}

// Start opens the speaker; on failure the player stays silent and the game keeps running
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBuffer)); err != nil {
		p.logger.Warn().Err(err).Msg("Audio unavailable, continuing silent")
		return err
	}

	// A permanent silent voice keeps the mixer from draining out of the speaker
	p.mixer.Add(beep.Silence(-1))
	speaker.Play(p.mixer)
	p.started = true
	p.logger.Info().Int("sample_rate", int(sampleRate)).Msg("Audio started")
	return nil
}

// Close silences every voice
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
}

// SetArenaWidth updates the panning range after a resize
func (p *Player) SetArenaWidth(width float64) {
	p.mu.Lock()
	p.width = width
	p.mu.Unlock()
}

// ToggleMute flips mute and reports whether sound is now on
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return !p.muted
}

// Play queues cue panned by x; false when stopped, muted, unknown or over the voice limit
func (p *Player) Play(cue string, x, volume float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.muted {
		return false
	}
	s, ok := p.build(cue, x, volume)
	if !ok {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if p.mixer.Len()-1 >= parameter.AudioMaxVoices {
		return false
	}
	p.mixer.Add(s)
	return true
}

// build renders a cue into a finite streamer scaled by master and cue volume
func (p *Player) build(cue string, x, volume float64) (beep.Streamer, bool) {
	r, ok := recipes[cue]
	if !ok {
		return nil, false
	}
	s := newVolume(r(sampleRate), p.volume*min(1, max(0, volume)))
	return &effects.Pan{Streamer: s, Pan: pan(x, p.width)}, true
}

// pan maps an arena x to a stereo position in [-AudioMaxPan, AudioMaxPan]
func pan(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	rel := min(1, max(0, x/width))
	return (rel*2 - 1) * parameter.AudioMaxPan
}
