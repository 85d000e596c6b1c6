package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBuffer is the speaker buffer length
	AudioBuffer = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume
	AudioMasterVolume = 0.5

	// AudioMaxVoices bounds concurrently mixed cues; further cues are refused
	AudioMaxVoices = 24

	// AudioMaxPan is the strongest stereo pan applied at the arena edges
	AudioMaxPan = 0.7
)
