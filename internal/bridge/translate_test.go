package bridge

import (
	"testing"

	"github.com/PixPMusic/gopher-gamepad/internal/config"
	"github.com/PixPMusic/gopher-gamepad/internal/gamepad"
	"github.com/PixPMusic/gopher-gamepad/internal/midi"
)

func TestTranslatePressAndRelease(t *testing.T) {
	tr := NewTranslator(config.Default())

	on, ok := tr.Translate(gamepad.Event{Kind: gamepad.ButtonPressed, Button: gamepad.ButtonSouth})
	if !ok {
		t.Fatal("press of a mapped button produced nothing")
	}
	if on.Kind != midi.NoteOnMsg || on.Note != midi.E1 || on.Value != 80 || on.Channel != midi.Ch15 {
		t.Errorf("press: got %v, want NoteOn Ch15 E1 velocity 80", on)
	}

	off, ok := tr.Translate(gamepad.Event{Kind: gamepad.ButtonReleased, Button: gamepad.ButtonSouth})
	if !ok {
		t.Fatal("release of a mapped button produced nothing")
	}
	if off.Kind != midi.NoteOffMsg || off.Note != on.Note || off.Value != 80 {
		t.Errorf("release: got %v, want NoteOff on the same note with velocity 80", off)
	}
}

func TestTranslateAxisFullDeflection(t *testing.T) {
	tr := NewTranslator(config.Default())

	msg, ok := tr.Translate(gamepad.Event{Kind: gamepad.AxisChanged, Axis: gamepad.AxisLeftStickX, Value: 1.0})
	if !ok {
		t.Fatal("mapped axis produced nothing")
	}
	if msg.Kind != midi.ControlChangeMsg || msg.Controller != 3 || msg.Value != 127 {
		t.Errorf("full deflection: got %v, want ControlChange CC3 value 127", msg)
	}

	msg, _ = tr.Translate(gamepad.Event{Kind: gamepad.AxisChanged, Axis: gamepad.AxisLeftStickX, Value: 0})
	if msg.Value != 64 {
		t.Errorf("rest position: got value %d, want 64", uint8(msg.Value))
	}
}

func TestTranslateTriggerMidpoint(t *testing.T) {
	tr := NewTranslator(config.Default())

	msg, ok := tr.Translate(gamepad.Event{Kind: gamepad.ButtonChanged, Button: gamepad.ButtonLeftTrigger, Value: 0.5})
	if !ok {
		t.Fatal("mapped trigger produced nothing")
	}
	if msg.Kind != midi.ControlChangeMsg || msg.Controller != 1 || msg.Value != 64 {
		t.Errorf("half pull: got %v, want ControlChange CC1 value 64", msg)
	}
}

func TestTranslateUnmappedProducesNothing(t *testing.T) {
	tr := NewTranslator(config.Default())

	events := []gamepad.Event{
		{Kind: gamepad.ButtonPressed, Button: gamepad.ButtonLeftThumb},
		{Kind: gamepad.ButtonReleased, Button: gamepad.ButtonRightThumb},
		{Kind: gamepad.ButtonChanged, Button: gamepad.ButtonSouth, Value: 1},
		{Kind: gamepad.AxisChanged, Axis: gamepad.Axis(42), Value: 1},
	}
	for _, ev := range events {
		if msg, ok := tr.Translate(ev); ok {
			t.Errorf("%v: produced %v, want nothing", ev, msg)
		}
	}
}

func TestTranslateLifecycleProducesNothing(t *testing.T) {
	tr := NewTranslator(config.Default())

	for _, kind := range []gamepad.EventKind{gamepad.Connected, gamepad.Disconnected} {
		if msg, ok := tr.Translate(gamepad.Event{Kind: kind}); ok {
			t.Errorf("kind %d: produced %v, want nothing", kind, msg)
		}
	}
}

func TestTranslateUsesConfiguredChannel(t *testing.T) {
	cfg := config.Default()
	cfg.OutputChannel = midi.Ch3
	tr := NewTranslator(cfg)

	msg, ok := tr.Translate(gamepad.Event{Kind: gamepad.AxisChanged, Axis: gamepad.AxisRightStickY, Value: -1})
	if !ok {
		t.Fatal("mapped axis produced nothing")
	}
	if msg.Channel != midi.Ch3 {
		t.Errorf("channel: got %v, want Ch3", msg.Channel)
	}
	if msg.Value != 0 {
		t.Errorf("full down deflection: got value %d, want 0", uint8(msg.Value))
	}
}
