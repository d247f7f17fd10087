package lcd1602

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/display"
)

var (
	// ErrInvalidAddr is returned for a CGRAM address outside 0-31.
	ErrInvalidAddr = errors.New("lcd1602: invalid CGRAM address")
	// ErrInvalidCursorPos is returned for a position outside the 16x2 grid.
	ErrInvalidCursorPos = errors.New("lcd1602: invalid cursor position")
	// ErrUnsupportedBusWidth is returned when 8-bit mode is requested.
	ErrUnsupportedBusWidth = errors.New("lcd1602: unsupported bus width")
	// ErrTimer wraps a failure of the timer's Wait.
	ErrTimer = errors.New("lcd1602: timer failed")
	// ErrHalted is returned by every operation after Halt or Release.
	ErrHalted = errors.New("lcd1602: halted")
	// ErrNotImplemented is returned for display.TextDisplay operations the
	// hardware cannot do.
	ErrNotImplemented = fmt.Errorf("lcd1602: %w", display.ErrNotImplemented)
)

// GPIOError is returned when writing to one of the pins fails. The display
// may have received part of a transfer.
type GPIOError struct {
	Pin string // EN, RS, D4, D5, D6 or D7
	Err error
}

func (e *GPIOError) Error() string {
	return fmt.Sprintf("lcd1602: %s pin: %v", e.Pin, e.Err)
}

func (e *GPIOError) Unwrap() error {
	return e.Err
}
