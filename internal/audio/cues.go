// Package audio plays short synthesized cues for session events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"ringjump/internal/session"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq float64
	dur  time.Duration
}

// Frequency 0 is a rest.
var cueTones = map[session.EventKind][]tone{
	session.EventArmed:    {{440, 25 * time.Millisecond}},
	session.EventJump:     {{660, 60 * time.Millisecond}},
	session.EventPickup:   {{880, 70 * time.Millisecond}, {1320, 90 * time.Millisecond}},
	session.EventDeath:    {{110, 350 * time.Millisecond}},
	session.EventStage:    {{523, 80 * time.Millisecond}, {659, 80 * time.Millisecond}, {784, 80 * time.Millisecond}, {1047, 140 * time.Millisecond}},
	session.EventFinished: {{392, 200 * time.Millisecond}, {0, 40 * time.Millisecond}, {262, 300 * time.Millisecond}},
}

var cueVolume = map[session.EventKind]float64{
	session.EventArmed: -3,
	session.EventDeath: -0.5,
}

// Cue builds the streamer for an event kind and reports its length in samples.
func Cue(kind session.EventKind, sr beep.SampleRate) (beep.Streamer, int, error) {
	tones, ok := cueTones[kind]
	if !ok {
		return nil, 0, fmt.Errorf("audio: no cue for %v", kind)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	total := 0
	for _, t := range tones {
		n := sr.N(t.dur)
		total += n
		if t.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, 0, fmt.Errorf("audio: %v cue at %.0f Hz: %w", kind, t.freq, err)
		}
		parts = append(parts, beep.Take(n, sine))
	}
	vol := -1.5
	if v, ok := cueVolume[kind]; ok {
		vol = v
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: vol}, total, nil
}

// Player mixes cues onto the speaker. It implements session.Listener and
// stays silent until Initialize succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles output without closing the speaker.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Notify queues the cue for ev.
func (p *Player) Notify(ev session.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}
	s, _, err := Cue(ev.Kind, sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
