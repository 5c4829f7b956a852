package gamepad

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Button identifies a digital control on a gamepad. LeftTrigger and
// RightTrigger are the analog triggers; they report positions through
// ButtonChanged events and edges through ButtonPressed/ButtonReleased.
type Button uint8

const (
	ButtonSouth Button = iota
	ButtonEast
	ButtonNorth
	ButtonWest
	ButtonLeftBumper
	ButtonRightBumper
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonSelect
	ButtonStart
	ButtonMode
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = [...]string{
	"South",
	"East",
	"North",
	"West",
	"LeftBumper",
	"RightBumper",
	"LeftTrigger",
	"RightTrigger",
	"Select",
	"Start",
	"Mode",
	"LeftThumb",
	"RightThumb",
	"DPadUp",
	"DPadDown",
	"DPadLeft",
	"DPadRight",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Axis identifies an analog stick axis.
type Axis uint8

const (
	AxisLeftStickX Axis = iota
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
)

var axisNames = [...]string{
	"LeftStickX",
	"LeftStickY",
	"RightStickX",
	"RightStickY",
}

func (a Axis) String() string {
	if int(a) < len(axisNames) {
		return axisNames[a]
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// EventKind discriminates gamepad events.
type EventKind uint8

const (
	ButtonPressed EventKind = iota
	ButtonReleased
	ButtonChanged
	AxisChanged
	Connected
	Disconnected
)

// Event is one observation from a gamepad. Button is set for the three
// button kinds, Axis for AxisChanged. Value carries the position:
// [0, 1] for ButtonChanged, [-1, 1] for AxisChanged with positive
// meaning up or right.
type Event struct {
	Device uuid.UUID
	Kind   EventKind
	Button Button
	Axis   Axis
	Value  float64
	Time   time.Time
}

func (e Event) String() string {
	switch e.Kind {
	case ButtonPressed:
		return fmt.Sprintf("%v pressed", e.Button)
	case ButtonReleased:
		return fmt.Sprintf("%v released", e.Button)
	case ButtonChanged:
		return fmt.Sprintf("%v changed to %.3f", e.Button, e.Value)
	case AxisChanged:
		return fmt.Sprintf("%v moved to %.3f", e.Axis, e.Value)
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	}
	return fmt.Sprintf("Event(%d)", uint8(e.Kind))
}

// DeviceInfo describes one attached gamepad. The ID is assigned at
// discovery and carried on every event the device produces.
type DeviceInfo struct {
	ID   uuid.UUID
	Name string
	Path string
}
