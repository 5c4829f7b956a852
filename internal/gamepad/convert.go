package gamepad

import (
	"time"

	"github.com/holoplot/go-evdev"
)

// Kernel key event values.
const (
	keyRelease = 0
	keyPress   = 1
)

// triggerThreshold is the position past which an analog trigger counts
// as pressed.
const triggerThreshold = 0.5

// buttonCodes maps kernel key codes to buttons. Some pads report the
// dpad and the analog triggers as keys as well.
var buttonCodes = map[evdev.EvCode]Button{
	evdev.BTN_SOUTH:      ButtonSouth,
	evdev.BTN_EAST:       ButtonEast,
	evdev.BTN_NORTH:      ButtonNorth,
	evdev.BTN_WEST:       ButtonWest,
	evdev.BTN_TL:         ButtonLeftBumper,
	evdev.BTN_TR:         ButtonRightBumper,
	evdev.BTN_TL2:        ButtonLeftTrigger,
	evdev.BTN_TR2:        ButtonRightTrigger,
	evdev.BTN_SELECT:     ButtonSelect,
	evdev.BTN_START:      ButtonStart,
	evdev.BTN_MODE:       ButtonMode,
	evdev.BTN_THUMBL:     ButtonLeftThumb,
	evdev.BTN_THUMBR:     ButtonRightThumb,
	evdev.BTN_DPAD_UP:    ButtonDPadUp,
	evdev.BTN_DPAD_DOWN:  ButtonDPadDown,
	evdev.BTN_DPAD_LEFT:  ButtonDPadLeft,
	evdev.BTN_DPAD_RIGHT: ButtonDPadRight,
}

// stickCodes maps kernel absolute axis codes to stick axes. flip marks
// the kernel axes that grow downward; events report up as positive.
var stickCodes = map[evdev.EvCode]struct {
	axis Axis
	flip bool
}{
	evdev.ABS_X:  {AxisLeftStickX, false},
	evdev.ABS_Y:  {AxisLeftStickY, true},
	evdev.ABS_RX: {AxisRightStickX, false},
	evdev.ABS_RY: {AxisRightStickY, true},
}

// triggerCodes maps kernel pressure axis codes to the analog triggers.
var triggerCodes = map[evdev.EvCode]Button{
	evdev.ABS_Z:  ButtonLeftTrigger,
	evdev.ABS_RZ: ButtonRightTrigger,
}

// converter turns raw kernel input events for one device into gamepad
// events. It tracks the little state the synthesis needs: which analog
// triggers are past the press threshold and where the hat rests.
type converter struct {
	abs map[evdev.EvCode]evdev.AbsInfo

	triggerOn map[evdev.EvCode]bool
	hat       map[evdev.EvCode]int32
}

func newConverter(abs map[evdev.EvCode]evdev.AbsInfo) *converter {
	return &converter{
		abs:       abs,
		triggerOn: make(map[evdev.EvCode]bool, 2),
		hat:       make(map[evdev.EvCode]int32, 2),
	}
}

// convert returns the gamepad events for one kernel event, in the order
// they should be observed. Unknown codes and event types yield nothing.
func (c *converter) convert(ie *evdev.InputEvent) []Event {
	t := time.Unix(int64(ie.Time.Sec), int64(ie.Time.Usec)*1000)

	switch ie.Type {
	case evdev.EV_KEY:
		btn, ok := buttonCodes[ie.Code]
		if !ok {
			return nil
		}
		switch ie.Value {
		case keyPress:
			return buttonEdge(btn, true, t)
		case keyRelease:
			return buttonEdge(btn, false, t)
		}
		return nil

	case evdev.EV_ABS:
		if s, ok := stickCodes[ie.Code]; ok {
			v := c.scaleCentered(ie.Code, ie.Value)
			if s.flip {
				v = -v
			}
			return []Event{{Kind: AxisChanged, Axis: s.axis, Value: v, Time: t}}
		}
		if btn, ok := triggerCodes[ie.Code]; ok {
			return c.triggerEvents(btn, ie.Code, ie.Value, t)
		}
		switch ie.Code {
		case evdev.ABS_HAT0X:
			return c.hatEvents(ie.Code, ButtonDPadLeft, ButtonDPadRight, ie.Value, t)
		case evdev.ABS_HAT0Y:
			// Hat up is -1 in the kernel.
			return c.hatEvents(ie.Code, ButtonDPadUp, ButtonDPadDown, ie.Value, t)
		}
		return nil
	}
	return nil
}

// buttonEdge is the event pair for a digital transition: the position
// update first, then the edge.
func buttonEdge(btn Button, pressed bool, t time.Time) []Event {
	if pressed {
		return []Event{
			{Kind: ButtonChanged, Button: btn, Value: 1, Time: t},
			{Kind: ButtonPressed, Button: btn, Time: t},
		}
	}
	return []Event{
		{Kind: ButtonChanged, Button: btn, Value: 0, Time: t},
		{Kind: ButtonReleased, Button: btn, Time: t},
	}
}

// triggerEvents reports the trigger position and synthesizes an edge
// when the position crosses the press threshold.
func (c *converter) triggerEvents(btn Button, code evdev.EvCode, raw int32, t time.Time) []Event {
	v := c.scaleUnsigned(code, raw)
	events := []Event{{Kind: ButtonChanged, Button: btn, Value: v, Time: t}}

	on := v >= triggerThreshold
	was := c.triggerOn[code]
	switch {
	case on && !was:
		events = append(events, Event{Kind: ButtonPressed, Button: btn, Time: t})
	case !on && was:
		events = append(events, Event{Kind: ButtonReleased, Button: btn, Time: t})
	}
	c.triggerOn[code] = on
	return events
}

// hatEvents synthesizes dpad edges from a hat axis transition. Releases
// come before presses so a -1 to +1 jump reads as release then press.
func (c *converter) hatEvents(code evdev.EvCode, negative, positive Button, raw int32, t time.Time) []Event {
	old := c.hat[code]
	if old == raw {
		return nil
	}
	c.hat[code] = raw

	var events []Event
	if old < 0 {
		events = append(events, buttonEdge(negative, false, t)...)
	}
	if old > 0 {
		events = append(events, buttonEdge(positive, false, t)...)
	}
	if raw < 0 {
		events = append(events, buttonEdge(negative, true, t)...)
	}
	if raw > 0 {
		events = append(events, buttonEdge(positive, true, t)...)
	}
	return events
}

// scaleCentered maps a raw absolute value onto [-1, 1] using the axis
// range the device advertises. Axes with no advertised range rest at 0.
func (c *converter) scaleCentered(code evdev.EvCode, raw int32) float64 {
	ai, ok := c.abs[code]
	min, max := float64(ai.Minimum), float64(ai.Maximum)
	if !ok || max <= min {
		return 0
	}
	return (float64(raw)-min)/(max-min)*2 - 1
}

// scaleUnsigned maps a raw absolute value onto [0, 1] using the axis
// range the device advertises. Axes with no advertised range rest at 0.
func (c *converter) scaleUnsigned(code evdev.EvCode, raw int32) float64 {
	ai, ok := c.abs[code]
	min, max := float64(ai.Minimum), float64(ai.Maximum)
	if !ok || max <= min {
		return 0
	}
	return (float64(raw) - min) / (max - min)
}
