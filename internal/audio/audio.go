// internal/audio/audio.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rparrett/taipo/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// Player turns game events into short synthesized cues. It subscribes to
// the dispatcher once and gates everything behind the mute toggle, so the
// rest of the game never talks to the audio device directly.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewPlayer(dispatcher *event.Dispatcher) *Player {
	p := &Player{mixer: &beep.Mixer{}}
	dispatcher.Subscribe(event.ActionCommitted, p)
	dispatcher.Subscribe(event.InputRejected, p)
	dispatcher.Subscribe(event.TowerFired, p)
	dispatcher.Subscribe(event.EnemyKilled, p)
	dispatcher.Subscribe(event.GoalDamaged, p)
	dispatcher.Subscribe(event.Victory, p)
	dispatcher.Subscribe(event.GameOver, p)
	dispatcher.Subscribe(event.MuteToggled, p)
	return p
}

// Initialize opens the audio device. Safe to skip in headless runs; every
// play call is a no-op until it succeeds.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) OnEvent(e event.Event) {
	switch e.Type {
	case event.MuteToggled:
		if muted, ok := e.Data.(bool); ok {
			p.mu.Lock()
			p.muted = muted
			p.mu.Unlock()
		}
	case event.ActionCommitted:
		p.play(tone(880, 60*time.Millisecond))
	case event.InputRejected:
		p.play(tone(110, 150*time.Millisecond))
	case event.TowerFired:
		p.play(tone(660, 40*time.Millisecond))
	case event.EnemyKilled:
		p.play(chime(523.25, 120*time.Millisecond))
	case event.GoalDamaged:
		p.play(tone(196, 250*time.Millisecond))
	case event.Victory:
		p.play(chime(783.99, 600*time.Millisecond))
	case event.GameOver:
		p.play(tone(98, 800*time.Millisecond))
	}
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(s)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), newToneGenerator(freq, d))
}

func chime(freq float64, d time.Duration) beep.Streamer {
	fundamental := beep.Take(sampleRate.N(d), newToneGenerator(freq, d))
	overtone := beep.Take(sampleRate.N(d), newToneGenerator(freq*2, d))
	mixer := &beep.Mixer{}
	mixer.Add(fundamental, overtone)
	return beep.Take(sampleRate.N(d), mixer)
}
