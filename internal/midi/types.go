package midi

import "fmt"

// Channel is a MIDI channel in its wire form (0-15).
type Channel uint8

const (
	Ch1 Channel = iota
	Ch2
	Ch3
	Ch4
	Ch5
	Ch6
	Ch7
	Ch8
	Ch9
	Ch10
	Ch11
	Ch12
	Ch13
	Ch14
	Ch15
	Ch16
)

// NewChannel validates n as a wire channel number.
func NewChannel(n uint8) (Channel, error) {
	c := Channel(n)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// Validate reports whether the channel fits the 4-bit wire field.
func (c Channel) Validate() error {
	if c > 15 {
		return fmt.Errorf("channel %d out of range (0-15)", uint8(c))
	}
	return nil
}

func (c Channel) String() string {
	return fmt.Sprintf("Ch%d", uint8(c)+1)
}

// Note is a MIDI note number (0-127).
type Note uint8

// Note numbers for the pitches the default mapping uses, following the
// middle-C-is-C4 convention.
const (
	C1 Note = 24
	D1 Note = 26
	E1 Note = 28
	F1 Note = 29
	A2 Note = 45
	B2 Note = 47
	C3 Note = 48
	D3 Note = 50
	E3 Note = 52
	C4 Note = 60
	D4 Note = 62
	A4 Note = 69
	B4 Note = 71
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NewNote validates n as a note number.
func NewNote(n uint8) (Note, error) {
	note := Note(n)
	if err := note.Validate(); err != nil {
		return 0, err
	}
	return note, nil
}

// Validate reports whether the note fits the 7-bit data byte.
func (n Note) Validate() error {
	if n > 127 {
		return fmt.Errorf("note %d out of range (0-127)", uint8(n))
	}
	return nil
}

// String renders the note in scientific pitch notation, middle C being C4.
func (n Note) String() string {
	return fmt.Sprintf("%s%d", noteNames[n%12], int(n)/12-1)
}

// Controller is a control change number (0-119). Numbers 120-127 are
// channel mode messages and are rejected.
type Controller uint8

// NewController validates n as a controller number.
func NewController(n uint8) (Controller, error) {
	c := Controller(n)
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return c, nil
}

// Validate reports whether the number addresses a controller rather than
// a channel mode message.
func (c Controller) Validate() error {
	if c > 119 {
		return fmt.Errorf("controller %d out of range (0-119)", uint8(c))
	}
	return nil
}

func (c Controller) String() string {
	return fmt.Sprintf("CC%d", uint8(c))
}

// Value is a 7-bit data value (0-127), used for velocities and controller
// positions.
type Value uint8

// NewValue validates n as a 7-bit value.
func NewValue(n uint8) (Value, error) {
	v := Value(n)
	if err := v.Validate(); err != nil {
		return 0, err
	}
	return v, nil
}

// Validate reports whether the value fits the 7-bit data byte.
func (v Value) Validate() error {
	if v > 127 {
		return fmt.Errorf("value %d out of range (0-127)", uint8(v))
	}
	return nil
}
