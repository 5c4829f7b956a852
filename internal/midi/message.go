package midi

import "fmt"

// MessageKind discriminates the channel voice messages the bridge emits.
type MessageKind uint8

const (
	NoteOnMsg MessageKind = iota
	NoteOffMsg
	ControlChangeMsg
)

const (
	statusNoteOff       = 0x80
	statusNoteOn        = 0x90
	statusControlChange = 0xB0
)

// Message is a single channel voice message ready for wire framing.
// Note is set for the note kinds, Controller for control change.
type Message struct {
	Kind       MessageKind
	Channel    Channel
	Note       Note
	Controller Controller
	Value      Value
}

// NoteOn builds a note-on message.
func NoteOn(ch Channel, note Note, velocity Value) Message {
	return Message{Kind: NoteOnMsg, Channel: ch, Note: note, Value: velocity}
}

// NoteOff builds a note-off message.
func NoteOff(ch Channel, note Note, velocity Value) Message {
	return Message{Kind: NoteOffMsg, Channel: ch, Note: note, Value: velocity}
}

// ControlChange builds a control change message.
func ControlChange(ch Channel, controller Controller, value Value) Message {
	return Message{Kind: ControlChangeMsg, Channel: ch, Controller: controller, Value: value}
}

// WireLength returns the framed size of the message in bytes.
func (m Message) WireLength() int {
	return 3
}

// AppendTo appends the wire representation to buf and returns the
// extended slice. The appended bytes are exactly WireLength long.
func (m Message) AppendTo(buf []byte) []byte {
	switch m.Kind {
	case NoteOnMsg:
		return append(buf, statusNoteOn|byte(m.Channel), byte(m.Note), byte(m.Value))
	case NoteOffMsg:
		return append(buf, statusNoteOff|byte(m.Channel), byte(m.Note), byte(m.Value))
	case ControlChangeMsg:
		return append(buf, statusControlChange|byte(m.Channel), byte(m.Controller), byte(m.Value))
	}
	return buf
}

func (m Message) String() string {
	switch m.Kind {
	case NoteOnMsg:
		return fmt.Sprintf("NoteOn %v %v velocity %d", m.Channel, m.Note, uint8(m.Value))
	case NoteOffMsg:
		return fmt.Sprintf("NoteOff %v %v velocity %d", m.Channel, m.Note, uint8(m.Value))
	case ControlChangeMsg:
		return fmt.Sprintf("ControlChange %v %v value %d", m.Channel, m.Controller, uint8(m.Value))
	}
	return fmt.Sprintf("Message(%d)", uint8(m.Kind))
}
