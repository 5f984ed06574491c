package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Service owns the speaker and plays generated cues. When no audio
// backend is available the service degrades silently: every Play is a
// no-op and the scene runs without sound
type Service struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

func NewService() *Service {
	return &Service{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure disables audio but is not an error
// for the caller
func (s *Service) Init(muted bool) {
	s.muted.Store(muted)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return
	}
	speaker.Play(s.mixer)
	s.initialized = true
}

// ToggleMute flips the mute state and returns the new value
func (s *Service) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the current mute state
func (s *Service) Muted() bool { return s.muted.Load() }

func (s *Service) play(streamer beep.Streamer) {
	if s.muted.Load() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// PlayClick plays the single-click blip
func (s *Service) PlayClick() { s.play(CreateClickSound(sampleRate)) }

// PlayOpen plays the detail-open bell
func (s *Service) PlayOpen() { s.play(CreateOpenSound(sampleRate)) }

// PlayStep plays the carousel paging whoosh
func (s *Service) PlayStep() { s.play(CreateStepSound(sampleRate)) }

// Close silences the mixer
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
