package bridge

import (
	"github.com/PixPMusic/gopher-gamepad/internal/config"
	"github.com/PixPMusic/gopher-gamepad/internal/gamepad"
	"github.com/PixPMusic/gopher-gamepad/internal/midi"
)

// noteVelocity is the fixed velocity for key presses and releases.
const noteVelocity midi.Value = 80

// Translator converts gamepad events into MIDI messages through the
// configured mapping tables. Every message carries the configured
// channel.
type Translator struct {
	cfg *config.Config
}

// NewTranslator creates a translator over cfg. The config must already
// be validated.
func NewTranslator(cfg *config.Config) *Translator {
	return &Translator{cfg: cfg}
}

// Translate returns the message for one event. The second return is
// false when the event's control has no mapping or its kind produces
// nothing, which is the normal case for most events.
func (t *Translator) Translate(ev gamepad.Event) (midi.Message, bool) {
	switch ev.Kind {
	case gamepad.ButtonChanged:
		cc, ok := t.cfg.TriggerControllerFor(ev.Button)
		if !ok {
			return midi.Message{}, false
		}
		return midi.ControlChange(t.cfg.OutputChannel, cc, midi.UnsignedValue(ev.Value)), true

	case gamepad.ButtonPressed:
		note, ok := t.cfg.NoteFor(ev.Button)
		if !ok {
			return midi.Message{}, false
		}
		return midi.NoteOn(t.cfg.OutputChannel, note, noteVelocity), true

	case gamepad.ButtonReleased:
		note, ok := t.cfg.NoteFor(ev.Button)
		if !ok {
			return midi.Message{}, false
		}
		return midi.NoteOff(t.cfg.OutputChannel, note, noteVelocity), true

	case gamepad.AxisChanged:
		cc, ok := t.cfg.AxisControllerFor(ev.Axis)
		if !ok {
			return midi.Message{}, false
		}
		return midi.ControlChange(t.cfg.OutputChannel, cc, midi.CenteredValue(ev.Value)), true
	}
	return midi.Message{}, false
}
