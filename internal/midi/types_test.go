package midi

import "testing"

func TestNewChannelValidates(t *testing.T) {
	ch, err := NewChannel(14)
	if err != nil {
		t.Fatalf("NewChannel(14): unexpected error %v", err)
	}
	if ch != Ch15 {
		t.Errorf("NewChannel(14): got %v, want Ch15", ch)
	}
	if _, err := NewChannel(16); err == nil {
		t.Error("NewChannel(16): expected error")
	}
}

func TestNewControllerRejectsChannelMode(t *testing.T) {
	if _, err := NewController(119); err != nil {
		t.Errorf("NewController(119): unexpected error %v", err)
	}
	if _, err := NewController(120); err == nil {
		t.Error("NewController(120): expected error, 120-127 are channel mode")
	}
}

func TestNewNoteAndValueReject8Bit(t *testing.T) {
	if _, err := NewNote(127); err != nil {
		t.Errorf("NewNote(127): unexpected error %v", err)
	}
	if _, err := NewNote(128); err == nil {
		t.Error("NewNote(128): expected error")
	}
	if _, err := NewValue(128); err == nil {
		t.Error("NewValue(128): expected error")
	}
}

func TestNoteString(t *testing.T) {
	cases := []struct {
		note Note
		want string
	}{
		{C1, "C1"},
		{E1, "E1"},
		{A2, "A2"},
		{C4, "C4"},
		{A4, "A4"},
		{Note(61), "C#4"},
	}
	for _, c := range cases {
		if got := c.note.String(); got != c.want {
			t.Errorf("Note(%d).String(): got %q, want %q", uint8(c.note), got, c.want)
		}
	}
}

func TestChannelStringIsOneBased(t *testing.T) {
	if got := Ch15.String(); got != "Ch15" {
		t.Errorf("Ch15.String(): got %q, want \"Ch15\"", got)
	}
	if got := Ch1.String(); got != "Ch1" {
		t.Errorf("Ch1.String(): got %q, want \"Ch1\"", got)
	}
}
