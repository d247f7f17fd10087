package lcd1602

import (
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/display"
)

func TestDimensions(t *testing.T) {
	d := &Dev{}
	if d.Rows() != 2 || d.Cols() != 16 {
		t.Errorf("Rows(), Cols() = %d, %d, want 2, 16", d.Rows(), d.Cols())
	}
	if d.MinRow() != 1 || d.MinCol() != 1 {
		t.Errorf("MinRow(), MinCol() = %d, %d, want 1, 1", d.MinRow(), d.MinCol())
	}
}

func TestMoveTo(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     byte
	}{
		{"top left", 1, 1, 0x80},
		{"top right", 1, 16, 0x8F},
		{"bottom left", 2, 1, 0xC0},
		{"bottom right", 2, 16, 0xCF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDev(t)
			if err := d.MoveTo(tt.row, tt.col); err != nil {
				t.Fatal(err)
			}
			checkTrace(t, rec, join(cmd(tt.want), wait(1530*time.Microsecond)))
		})
	}
}

func TestMoveToInvalid(t *testing.T) {
	d, rec := newTestDev(t)
	for _, pos := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 17}, {-1, -1}} {
		if err := d.MoveTo(pos[0], pos[1]); !errors.Is(err, ErrInvalidCursorPos) {
			t.Errorf("MoveTo(%d, %d) = %v, want %v", pos[0], pos[1], err, ErrInvalidCursorPos)
		}
	}
	if len(rec.events) != 0 {
		t.Errorf("MoveTo() touched the bus: %+v", rec.events)
	}
}

func TestMove(t *testing.T) {
	d, rec := newTestDev(t)
	if err := d.Move(display.Forward); err != nil {
		t.Fatal(err)
	}
	if err := d.Move(display.Backward); err != nil {
		t.Fatal(err)
	}
	checkTrace(t, rec, join(cmd(0x14), wait(39*time.Microsecond), cmd(0x10), wait(39*time.Microsecond)))

	for _, dir := range []display.CursorDirection{display.Up, display.Down} {
		err := d.Move(dir)
		if !errors.Is(err, display.ErrNotImplemented) || !errors.Is(err, ErrNotImplemented) {
			t.Errorf("Move(%v) = %v, want %v", dir, err, ErrNotImplemented)
		}
	}
}

func TestCursor(t *testing.T) {
	tests := []struct {
		name  string
		modes []display.CursorMode
		want  byte
	}{
		{"no modes", nil, 0x0C},
		{"off", []display.CursorMode{display.CursorOff}, 0x0C},
		{"underline", []display.CursorMode{display.CursorUnderline}, 0x0E},
		{"blink", []display.CursorMode{display.CursorBlink}, 0x0D},
		{"block", []display.CursorMode{display.CursorBlock}, 0x0D},
		{"underline and blink", []display.CursorMode{display.CursorUnderline, display.CursorBlink}, 0x0F},
		{"blink then off", []display.CursorMode{display.CursorBlink, display.CursorOff}, 0x0C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rec := newTestDev(t)
			if err := d.Cursor(tt.modes...); err != nil {
				t.Fatal(err)
			}
			checkTrace(t, rec, join(cmd(tt.want), wait(39*time.Microsecond)))
		})
	}
}

func TestDisplayKeepsCursor(t *testing.T) {
	d, rec := newTestDev(t)
	if err := d.Cursor(display.CursorUnderline); err != nil {
		t.Fatal(err)
	}
	rec.reset()
	if err := d.Display(false); err != nil {
		t.Fatal(err)
	}
	if err := d.Display(true); err != nil {
		t.Fatal(err)
	}
	checkTrace(t, rec, join(cmd(0x0A), wait(39*time.Microsecond), cmd(0x0E), wait(39*time.Microsecond)))
}

func TestAutoScroll(t *testing.T) {
	rec := &recorder{}
	p, _ := newPins(rec)
	d, err := New(p, &fakeTimer{rec: rec}, &Opts{Direction: LeftToRight})
	if err != nil {
		t.Fatal(err)
	}
	rec.reset()

	if err := d.AutoScroll(true); err != nil {
		t.Fatal(err)
	}
	if err := d.AutoScroll(false); err != nil {
		t.Fatal(err)
	}
	checkTrace(t, rec, join(cmd(0x05), wait(39*time.Microsecond), cmd(0x04), wait(39*time.Microsecond)))
}

func TestWriteString(t *testing.T) {
	d, rec := newTestDev(t)
	n, err := d.WriteString("ok")
	if err != nil || n != 2 {
		t.Fatalf("WriteString() = %d, %v, want 2, nil", n, err)
	}
	checkTrace(t, rec, join(
		wait(320*time.Microsecond), data('o'),
		wait(320*time.Microsecond), data('k'),
		wait(1530*time.Microsecond),
	))
}
