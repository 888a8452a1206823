// Package audio plays the game's sound cues through the beep speaker
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/grid-snake/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio
// Every Play call is a no-op until Initialize succeeds, so the game runs without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager with volume in [0,1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayEat plays the food pickup chirp
func (sm *SoundManager) PlayEat() {
	sm.play(CreateEatSound(sampleRate, sm.volume))
}

// PlayGameOver plays the collision buzz
func (sm *SoundManager) PlayGameOver() {
	sm.play(CreateGameOverSound(sampleRate, sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Drain waits until queued sounds finish or timeout passes
func (sm *SoundManager) Drain(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		sm.mu.Lock()
		if !sm.initialized {
			sm.mu.Unlock()
			return
		}
		speaker.Lock()
		pending := sm.mixer.Len()
		speaker.Unlock()
		sm.mu.Unlock()

		if pending == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}
