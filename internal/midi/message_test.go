package midi

import (
	"bytes"
	"testing"
)

func TestMessageFraming(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
		want []byte
	}{
		{"note on", NoteOn(Ch15, E1, 80), []byte{0x9E, 28, 80}},
		{"note off", NoteOff(Ch15, E1, 80), []byte{0x8E, 28, 80}},
		{"control change", ControlChange(Ch15, Controller(3), 127), []byte{0xBE, 3, 127}},
		{"channel 1", NoteOn(Ch1, C4, 100), []byte{0x90, 60, 100}},
	}
	for _, c := range cases {
		got := c.msg.AppendTo(nil)
		if !bytes.Equal(got, c.want) {
			t.Errorf("%s: got % X, want % X", c.name, got, c.want)
		}
		if len(got) != c.msg.WireLength() {
			t.Errorf("%s: frame length %d, want %d", c.name, len(got), c.msg.WireLength())
		}
	}
}

func TestAppendToReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 8)
	msg := NoteOn(Ch15, E1, 80)

	buf = msg.AppendTo(buf[:0])
	if len(buf) != 3 || cap(buf) != 8 {
		t.Fatalf("expected in-place append, got len %d cap %d", len(buf), cap(buf))
	}

	buf = ControlChange(Ch15, Controller(1), 64).AppendTo(buf[:0])
	if !bytes.Equal(buf, []byte{0xBE, 1, 64}) {
		t.Errorf("reused buffer holds % X, want BE 01 40", buf)
	}
}

func TestMessageString(t *testing.T) {
	if got := NoteOn(Ch15, E1, 80).String(); got != "NoteOn Ch15 E1 velocity 80" {
		t.Errorf("NoteOn string: got %q", got)
	}
	if got := ControlChange(Ch15, Controller(3), 127).String(); got != "ControlChange Ch15 CC3 value 127" {
		t.Errorf("ControlChange string: got %q", got)
	}
}
