package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundFreq     = 880.0
	EatSoundDuration = 50 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundFreq     = 120.0
	GameOverSoundDuration = 400 * time.Millisecond
)
