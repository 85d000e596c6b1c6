package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/asteroids/engine"
)

const ms = time.Millisecond

// recipe builds the unscaled streamer for one cue
type recipe func(rate beep.SampleRate) beep.Streamer

// notes plays sine blips back to back
func notes(rate beep.SampleRate, d time.Duration, freqs ...float64) beep.Streamer {
	parts := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		parts[i] = tone(f, f, d, WaveSine, rate)
	}
	return beep.Seq(parts...)
}

// blast mixes a noise burst with a falling rumble
func blast(rate beep.SampleRate, d time.Duration, from, to float64) beep.Streamer {
	return beep.Mix(
		newVolume(tone(0, 0, d, WaveNoise, rate), 0.6),
		newVolume(tone(from, to, d, WaveSine, rate), 0.4),
	)
}

var recipes = map[string]recipe{
	engine.CueShoot: func(r beep.SampleRate) beep.Streamer {
		return newVolume(tone(880, 440, 80*ms, WaveSquare, r), 0.25)
	},
	engine.CueDash: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(200, 800, 200*ms, WaveSaw, r), 0.3),
			newVolume(tone(0, 0, 200*ms, WaveNoise, r), 0.2),
		)
	},
	engine.CueExplosionSmall: func(r beep.SampleRate) beep.Streamer {
		return newVolume(tone(0, 0, 250*ms, WaveNoise, r), 0.4)
	},
	engine.CueExplosionMedium: func(r beep.SampleRate) beep.Streamer {
		return newVolume(blast(r, 400*ms, 120, 60), 0.5)
	},
	engine.CueExplosionLarge: func(r beep.SampleRate) beep.Streamer {
		return newVolume(blast(r, 700*ms, 90, 30), 0.6)
	},
	engine.CueEnemyExplosion: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(400, 80, 300*ms, WaveSaw, r), 0.25),
			newVolume(tone(0, 0, 300*ms, WaveNoise, r), 0.2),
		)
	},
	engine.CueEnemyShoot: func(r beep.SampleRate) beep.Streamer {
		return newVolume(tone(300, 150, 100*ms, WaveSaw, r), 0.2)
	},
	engine.CuePowerUpRapid: func(r beep.SampleRate) beep.Streamer {
		return newVolume(beep.Seq(tone(660, 660, 60*ms, WaveSquare, r), tone(880, 880, 60*ms, WaveSquare, r)), 0.2)
	},
	engine.CuePowerUpTriple: func(r beep.SampleRate) beep.Streamer {
		return newVolume(notes(r, 70*ms, 523.25, 659.25, 783.99), 0.35)
	},
	engine.CuePowerUpShield: func(r beep.SampleRate) beep.Streamer {
		return newVolume(tone(440, 880, 300*ms, WaveSine, r), 0.35)
	},
	engine.CuePowerUpLife: func(r beep.SampleRate) beep.Streamer {
		return newVolume(notes(r, 90*ms, 523.25, 783.99, 1046.5), 0.35)
	},
	engine.CuePowerUpCrystal: func(r beep.SampleRate) beep.Streamer {
		return beep.Mix(
			newVolume(tone(1318.5, 1318.5, 250*ms, WaveSine, r), 0.25),
			newVolume(tone(2637, 2637, 150*ms, WaveSine, r), 0.1),
		)
	},
	engine.CueLevelTransition: func(r beep.SampleRate) beep.Streamer {
		return newVolume(notes(r, 120*ms, 392, 523.25, 659.25, 783.99), 0.35)
	},
	engine.CueAchievement: func(r beep.SampleRate) beep.Streamer {
		return newVolume(beep.Seq(tone(987.77, 987.77, 80*ms, WaveSquare, r), tone(1318.51, 1318.51, 300*ms, WaveSquare, r)), 0.2)
	},
}

// Known reports whether cue has a recipe
func Known(cue string) bool {
	_, ok := recipes[cue]
	return ok
}
