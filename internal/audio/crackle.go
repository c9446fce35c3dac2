package audio

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Crackle is an infinite beep.Streamer producing sparse, decaying noise
// bursts. Its loudness follows the simulation: the presenter maps source-row
// heat into the level after every tick.
type Crackle struct {
	mu    sync.Mutex
	level float64

	energy float64
	rng    *rand.Rand
}

// NewCrackle returns a silent crackle generator with a deterministic noise
// source.
func NewCrackle(seed int64) *Crackle {
	return &Crackle{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// SetLevel adjusts the output loudness, clamped to [0, 1]. Safe to call from
// the simulation loop while the speaker streams.
func (c *Crackle) SetLevel(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	c.mu.Lock()
	c.level = level
	c.mu.Unlock()
}

// Stream fills samples with crackle noise. The stream never drains.
func (c *Crackle) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	level := c.level
	c.mu.Unlock()

	for i := range samples {
		// A hotter fire pops more often.
		if c.rng.Float64() < 0.0004+0.002*level {
			c.energy = 0.4 + 0.6*c.rng.Float64()
		}
		v := (c.rng.Float64()*2 - 1) * c.energy * level * 0.5
		c.energy *= 0.9995
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err reports no error; the stream is infinite.
func (c *Crackle) Err() error { return nil }

// Start initializes the speaker and begins playing the crackle stream.
func Start(c *Crackle) error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(c)
	return nil
}
