package feedback

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone describes the sine wave played by Speaker.
type Tone struct {
	Frequency float64
	Volume    float64
	Duration  time.Duration
}

// DefaultTone is an 880Hz blip at a low volume.
var DefaultTone = Tone{
	Frequency: 880,
	Volume:    0.15,
	Duration:  130 * time.Millisecond,
}

// Speaker plays a sine tone through the default audio device.
type Speaker struct {
	initErr error
	tone    Tone
	once    sync.Once
}

// NewSpeaker returns a Speaker for tone. The audio device is opened lazily on
// the first beep.
func NewSpeaker(tone Tone) *Speaker {
	return &Speaker{tone: tone}
}

func (s *Speaker) init() error {
	s.once.Do(func() {
		bufferSize := 10

		s.initErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
		if s.initErr != nil {
			slog.Warn("audio not supported, beeps disabled", slog.Any("error", s.initErr))
		}
	})

	return s.initErr
}

func (s *Speaker) Beep() {
	safely("audio", func() error {
		if err := s.init(); err != nil {
			// already logged once
			return nil
		}

		tone, err := generators.SineTone(sampleRate, s.tone.Frequency)
		if err != nil {
			return err
		}

		// Gain multiplies samples by 1+Gain.
		stream := &effects.Gain{
			Streamer: beep.Take(sampleRate.N(s.tone.Duration), tone),
			Gain:     s.tone.Volume - 1,
		}

		speaker.Play(stream)

		return nil
	})
}

// Vibrate is a no-op, speakers do not vibrate.
func (s *Speaker) Vibrate(...time.Duration) {}
