package config

import (
	"fmt"

	"github.com/PixPMusic/gopher-gamepad/internal/gamepad"
	"github.com/PixPMusic/gopher-gamepad/internal/midi"
)

// Config holds the bridge configuration: the output port to connect to,
// the channel every message is sent on, and the control mapping tables.
// It is built once at startup and never mutated afterwards.
type Config struct {
	// OutputPortName is matched exactly against the available MIDI
	// output port names.
	OutputPortName string
	OutputChannel  midi.Channel

	// Keys maps buttons to the notes their presses play.
	Keys map[gamepad.Button]midi.Note
	// TriggerControllers maps analog buttons to the controllers their
	// positions drive.
	TriggerControllers map[gamepad.Button]midi.Controller
	// AxisControllers maps stick axes to the controllers their
	// positions drive.
	AxisControllers map[gamepad.Axis]midi.Controller
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputPortName: "xbox",
		OutputChannel:  midi.Ch15,
		Keys: map[gamepad.Button]midi.Note{
			gamepad.ButtonNorth:       midi.C1,
			gamepad.ButtonEast:        midi.D1,
			gamepad.ButtonSouth:       midi.E1,
			gamepad.ButtonWest:        midi.F1,
			gamepad.ButtonLeftBumper:  midi.A2,
			gamepad.ButtonRightBumper: midi.B2,
			gamepad.ButtonStart:       midi.C3,
			gamepad.ButtonSelect:      midi.D3,
			gamepad.ButtonMode:        midi.E3,
			gamepad.ButtonDPadUp:      midi.A4,
			gamepad.ButtonDPadDown:    midi.B4,
			gamepad.ButtonDPadLeft:    midi.C4,
			gamepad.ButtonDPadRight:   midi.D4,
		},
		TriggerControllers: map[gamepad.Button]midi.Controller{
			gamepad.ButtonLeftTrigger:  1,
			gamepad.ButtonRightTrigger: 2,
		},
		AxisControllers: map[gamepad.Axis]midi.Controller{
			gamepad.AxisLeftStickX:  3,
			gamepad.AxisLeftStickY:  4,
			gamepad.AxisRightStickX: 5,
			gamepad.AxisRightStickY: 6,
		},
	}
}

// Validate checks that every mapped value is wire-legal and that no
// button is mapped as both a key and an analog controller. It is run
// once at startup so translation never constructs an invalid message.
func (c *Config) Validate() error {
	if c.OutputPortName == "" {
		return fmt.Errorf("output port name is empty")
	}
	if err := c.OutputChannel.Validate(); err != nil {
		return fmt.Errorf("output channel: %w", err)
	}
	for b, note := range c.Keys {
		if err := note.Validate(); err != nil {
			return fmt.Errorf("key mapping for %v: %w", b, err)
		}
	}
	for b, cc := range c.TriggerControllers {
		if _, ok := c.Keys[b]; ok {
			return fmt.Errorf("button %v mapped as both key and analog controller", b)
		}
		if err := cc.Validate(); err != nil {
			return fmt.Errorf("trigger mapping for %v: %w", b, err)
		}
	}
	for a, cc := range c.AxisControllers {
		if err := cc.Validate(); err != nil {
			return fmt.Errorf("axis mapping for %v: %w", a, err)
		}
	}
	return nil
}

// NoteFor returns the note mapped to a button press.
func (c *Config) NoteFor(b gamepad.Button) (midi.Note, bool) {
	note, ok := c.Keys[b]
	return note, ok
}

// TriggerControllerFor returns the controller driven by an analog
// button's position.
func (c *Config) TriggerControllerFor(b gamepad.Button) (midi.Controller, bool) {
	cc, ok := c.TriggerControllers[b]
	return cc, ok
}

// AxisControllerFor returns the controller driven by a stick axis.
func (c *Config) AxisControllerFor(a gamepad.Axis) (midi.Controller, bool) {
	cc, ok := c.AxisControllers[a]
	return cc, ok
}
