package feedback

import (
	"time"

	"github.com/gen2brain/beeep"
)

// beeper matches beeep.Beep.
type beeper func(freq float64, duration int) error

// Buzzer approximates haptic pulses on desktops with short system beeps.
type Buzzer struct {
	beep      beeper
	sleep     func(time.Duration)
	frequency float64
}

// NewBuzzer returns a Buzzer that pulses at frequency Hz.
func NewBuzzer(frequency float64) *Buzzer {
	return &Buzzer{
		frequency: frequency,
		beep:      beeep.Beep,
		sleep:     time.Sleep,
	}
}

// Beep is a no-op, the buzzer only handles haptic cues.
func (b *Buzzer) Beep() {}

func (b *Buzzer) Vibrate(pattern ...time.Duration) {
	if len(pattern) == 0 {
		return
	}

	safely("vibration", func() error {
		return b.pulse(pattern)
	})
}

func (b *Buzzer) pulse(pattern []time.Duration) error {
	for i, d := range pattern {
		if i%2 == 1 {
			b.sleep(d)
			continue
		}

		if err := b.beep(b.frequency, int(d.Milliseconds())); err != nil {
			return err
		}
	}

	return nil
}
