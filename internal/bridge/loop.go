package bridge

import (
	"fmt"
	"log/slog"

	"github.com/PixPMusic/gopher-gamepad/internal/gamepad"
)

// Transport is the write half of an open MIDI output port. It is
// satisfied by gomidi's drivers.Out.
type Transport interface {
	Send(data []byte) error
}

// Loop drains a gamepad event stream into a MIDI transport, one message
// per translatable event, in event order.
type Loop struct {
	translator *Translator
	out        Transport
	buf        []byte
}

// NewLoop creates a dispatch loop. out may be nil when no output port
// matched at startup; translated messages are then dropped.
func NewLoop(t *Translator, out Transport) *Loop {
	return &Loop{
		translator: t,
		out:        out,
		buf:        make([]byte, 0, 3),
	}
}

// Run processes events until the stream closes. The first write failure
// ends the loop with the wrapped error; events without a mapping are
// skipped silently.
func (l *Loop) Run(events <-chan gamepad.Event) error {
	for ev := range events {
		slog.Debug("gamepad event", "device", ev.Device, "event", ev)

		msg, ok := l.translator.Translate(ev)
		if !ok {
			continue
		}
		slog.Debug("would send", "message", msg)
		if l.out == nil {
			continue
		}

		l.buf = msg.AppendTo(l.buf[:0])
		if err := l.out.Send(l.buf); err != nil {
			return fmt.Errorf("failed to send %v: %w", msg, err)
		}
	}
	return nil
}
