// Package audio loads the breathing cue sounds and plays them on the
// system speaker. Playback is fire-and-forget: every Play starts a fresh
// copy of the cue in a shared mixer, overlapping anything still sounding.
package audio

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/square-breathing/internal/breath"
	"github.com/iburimskiy/square-breathing/internal/config"
)

// Cues holds the decoded cue sounds and the mixer they are played through.
type Cues struct {
	format  beep.Format
	buffers map[breath.Phase]*beep.Buffer
	mixer   *beep.Mixer
	tap     *levelTap
	logger  *zap.Logger
}

// Load decodes one file per phase. All cues are brought to the sample rate
// of the first one decoded.
func Load(files map[breath.Phase]string, logger *zap.Logger) (*Cues, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no cue files given")
	}

	c := &Cues{
		buffers: make(map[breath.Phase]*beep.Buffer, len(files)),
		mixer:   &beep.Mixer{},
		logger:  logger,
	}
	c.tap = newLevelTap(c.mixer, config.LevelRingSize)

	for _, phase := range []breath.Phase{breath.Inhale, breath.Hold, breath.Exhale} {
		path, ok := files[phase]
		if !ok {
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s cue: %w", phase, err)
		}
		if c.format.SampleRate == 0 {
			c.format = buf.Format()
		}
		c.buffers[phase] = resampled(buf, c.format.SampleRate, config.ResampleQuality)

		logger.Debug("Loaded cue",
			zap.String("phase", phase.String()),
			zap.String("path", path),
			zap.Duration("length", c.format.SampleRate.D(buf.Len())),
		)
	}
	if len(c.buffers) == 0 {
		return nil, fmt.Errorf("no cue files for known phases")
	}
	return c, nil
}

// Start opens the speaker and begins streaming the mixer. The mixer emits
// silence while no cue is playing.
func (c *Cues) Start() error {
	bufferSize := c.format.SampleRate.N(config.AudioBufferTime)
	if err := speaker.Init(c.format.SampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.tap)

	c.logger.Info("Audio started",
		zap.Int("sample_rate", int(c.format.SampleRate)),
		zap.Int("buffer_size", bufferSize),
	)
	return nil
}

// Play starts the cue for phase and returns immediately.
func (c *Cues) Play(phase breath.Phase) {
	buf, ok := c.buffers[phase]
	if !ok {
		c.logger.Warn("No cue for phase", zap.String("phase", phase.String()))
		return
	}
	speaker.Lock()
	c.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Level reports how loud the mixed cues were over the last few
// milliseconds, 0..1.
func (c *Cues) Level() float64 {
	return c.tap.level()
}

// Playing reports how many cues are still sounding.
func (c *Cues) Playing() int {
	speaker.Lock()
	defer speaker.Unlock()
	return c.mixer.Len()
}

// Close stops playback and releases the speaker.
func (c *Cues) Close() {
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.logger.Debug("Audio closed")
}
