package lcd1602

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Rows returns the number of rows of the display.
func (d *Dev) Rows() int {
	return rows
}

// Cols returns the number of columns of the display.
func (d *Dev) Cols() int {
	return cols
}

// MinRow returns the first row for MoveTo.
func (d *Dev) MinRow() int {
	return 1
}

// MinCol returns the first column for MoveTo.
func (d *Dev) MinCol() int {
	return 1
}

// MoveTo moves the cursor to row, col, both counted from 1.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > rows || col < d.MinCol() || col > cols {
		return fmt.Errorf("%w: row %d, column %d", ErrInvalidCursorPos, row, col)
	}
	return d.SetCursor(uint8(col-1), uint8(row-1))
}

// Move shifts the cursor one position. Only display.Forward and
// display.Backward are supported.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		return d.ShiftCursor(true)
	case display.Backward:
		return d.ShiftCursor(false)
	default:
		return ErrNotImplemented
	}
}

// Cursor sets the cursor appearance. Modes are applied in order, so
// Cursor(display.CursorUnderline, display.CursorBlink) enables both.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	cursor, blink := d.cursor, d.blink
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			cursor, blink = false, false
		case display.CursorUnderline:
			cursor = true
		case display.CursorBlink, display.CursorBlock:
			blink = true
		default:
			return fmt.Errorf("lcd1602: unexpected cursor mode %v", mode)
		}
	}
	return d.SetDisplay(d.on, cursor, blink)
}

// Display turns the display on or off, keeping the cursor settings.
func (d *Dev) Display(on bool) error {
	return d.SetDisplay(on, d.cursor, d.blink)
}

// AutoScroll enables edge tracking: each write shifts the display instead of
// moving the cursor.
func (d *Dev) AutoScroll(enabled bool) error {
	return d.SetEntryMode(d.dir, enabled)
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}
