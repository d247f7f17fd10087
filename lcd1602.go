// Package lcd1602 controls a 16x2 HD44780 character LCD wired in 4-bit mode
// over six GPIO lines.
//
// The driver never reads from the display, so every operation is followed by
// a fixed settle delay instead of busy flag polling.
//
// See the examples for how to use this package.
package lcd1602

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Pin is a digital output line.
//
// Any gpio.PinOut satisfies it.
type Pin interface {
	Out(l gpio.Level) error
}

// Timer is a count-down timer. Wait blocks until the duration passed to the
// last Start has elapsed.
type Timer interface {
	Start(d time.Duration)
	Wait() error
}

// Pins are the six lines connecting the host to the display.
type Pins struct {
	EN Pin // Enable
	RS Pin // Register select (low: command, high: data)

	// Data lines, D0-D3 are left unconnected in 4-bit mode
	D4, D5, D6, D7 Pin
}

// BusWidth is the width of the data bus between the host and the display.
type BusWidth int

const (
	FourBit  BusWidth = iota // D4-D7 only
	EightBit                 // D0-D7, not supported
)

// Direction is the cursor movement after each character write.
type Direction int

const (
	RightToLeft Direction = iota
	LeftToRight
)

// Opts is the configuration for the display. The zero value selects the
// defaults.
type Opts struct {
	BusWidth BusWidth // Only FourBit is supported

	// Entry mode set during initialization
	Direction    Direction // default: RightToLeft
	EdgeTracking bool      // Shift the display instead of the cursor

	// Time EN is held high on each nibble. Zero relies on the latency of the
	// pin writes alone.
	PulseWidth time.Duration
}

const (
	cols = 16
	rows = 2

	// Second row starts at this DDRAM address
	row1Offset = 0x40

	cgramSize = 32
)

// Instructions
const (
	cmdClear          byte = 0x01
	cmdHome           byte = 0x02
	cmdEntryMode      byte = 0x04
	cmdDisplayControl byte = 0x08
	cmdShift          byte = 0x10
	cmdFunctionSet    byte = 0x20
	cmdSetCGRAMAddr   byte = 0x40
	cmdSetDDRAMAddr   byte = 0x80
)

// Instruction flags
const (
	entryEdgeTracking byte = 0x01
	entryRightToLeft  byte = 0x02

	displayBlink  byte = 0x01
	displayCursor byte = 0x02
	displayOn     byte = 0x04

	shiftRight   byte = 0x04
	shiftDisplay byte = 0x08

	functionTwoLines byte = 0x08
)

// Settle delays, taken from the HD44780 datasheet execution times.
const (
	delayPowerOn     = 50000 * time.Microsecond
	delayResyncFirst = 4100 * time.Microsecond
	delayResync      = 150 * time.Microsecond
	delayShort       = 39 * time.Microsecond
	delayLong        = 1530 * time.Microsecond
	delayChar        = 320 * time.Microsecond
)

// Dev is the device handle for the display.
//
// A Dev owns its pins and timer until Release is called. It is not safe for
// concurrent use.
type Dev struct {
	pins  Pins
	timer Timer
	pulse time.Duration

	// Entry mode
	dir  Direction
	edge bool

	// Display control
	on     bool
	cursor bool
	blink  bool

	halted bool
}

// New initializes the display and returns a handle to it.
//
// opts can be nil to use defaults. The power-on sequence takes about 60ms.
// If it fails, the display state is unknown and the pins should be reset
// before trying again.
func New(p Pins, t Timer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if p.EN == nil || p.RS == nil || p.D4 == nil || p.D5 == nil || p.D6 == nil || p.D7 == nil {
		return nil, errors.New("lcd1602: all six pins are required")
	}
	if t == nil {
		return nil, errors.New("lcd1602: timer is required")
	}
	if opts.BusWidth != FourBit {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBusWidth, opts.BusWidth)
	}
	if opts.PulseWidth < 0 {
		return nil, errors.New("lcd1602: pulse width must not be negative")
	}

	d := &Dev{
		pins:  p,
		timer: t,
		pulse: opts.PulseWidth,
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the power-on sequence to the display.
func (d *Dev) init(opts *Opts) error {
	if err := d.Delay(delayPowerOn); err != nil {
		return err
	}
	if err := d.out("RS", d.pins.RS, gpio.Low); err != nil {
		return err
	}
	if err := d.out("EN", d.pins.EN, gpio.Low); err != nil {
		return err
	}

	// The controller may be in 8-bit mode or halfway through a 4-bit
	// transfer. Three 0x03 nibbles force 8-bit mode from any state.
	for _, wait := range []time.Duration{delayResyncFirst, delayResync, delayResync} {
		if err := d.writeNibble(0x03); err != nil {
			return err
		}
		if err := d.Delay(wait); err != nil {
			return err
		}
	}
	if err := d.SetBusWidth(FourBit); err != nil {
		return err
	}

	if err := d.Command(cmdFunctionSet | functionTwoLines); err != nil {
		return err
	}
	if err := d.Delay(delayShort); err != nil {
		return err
	}
	if err := d.SetDisplay(true, false, false); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	return d.SetEntryMode(opts.Direction, opts.EdgeTracking)
}

// Command sends an instruction byte. It does not wait for the instruction
// to complete.
func (d *Dev) Command(cmd byte) error {
	if d.halted {
		return ErrHalted
	}
	if err := d.out("RS", d.pins.RS, gpio.Low); err != nil {
		return err
	}
	return d.writeByte(cmd)
}

// WriteChar writes a character code at the cursor. It does not wait for
// the write to complete.
func (d *Dev) WriteChar(ch byte) error {
	if d.halted {
		return ErrHalted
	}
	if err := d.out("RS", d.pins.RS, gpio.High); err != nil {
		return err
	}
	return d.writeByte(ch)
}

// Print writes s at the cursor, one byte per character.
//
// Characters written before a failure remain on the display.
func (d *Dev) Print(s string) error {
	_, err := d.WriteString(s)
	return err
}

// Write writes p at the cursor and returns the number of characters sent to
// the display.
func (d *Dev) Write(p []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(p) == 0 {
		return 0, nil
	}
	for i, ch := range p {
		if err := d.Delay(delayChar); err != nil {
			return i, err
		}
		if err := d.WriteChar(ch); err != nil {
			return i, err
		}
	}
	return len(p), d.Delay(delayLong)
}

// WriteString writes s at the cursor.
func (d *Dev) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// SetEntryMode sets the cursor movement after each character write. With
// edgeTracking the whole display shifts instead.
func (d *Dev) SetEntryMode(dir Direction, edgeTracking bool) error {
	cmd := cmdEntryMode
	if dir == RightToLeft {
		cmd |= entryRightToLeft
	}
	if edgeTracking {
		cmd |= entryEdgeTracking
	}
	if err := d.Command(cmd); err != nil {
		return err
	}
	d.dir, d.edge = dir, edgeTracking
	return d.Delay(delayShort)
}

// SetBusWidth switches the controller interface to w. Only FourBit is
// supported.
func (d *Dev) SetBusWidth(w BusWidth) error {
	if w != FourBit {
		return fmt.Errorf("%w: %d", ErrUnsupportedBusWidth, w)
	}
	if d.halted {
		return ErrHalted
	}
	// Sent while the controller still reads 8 bits, so only one nibble.
	if err := d.writeNibble(cmdFunctionSet >> 4); err != nil {
		return err
	}
	return d.Delay(delayShort)
}

// SetCursor moves the cursor to column col (0-15) of row (0-1).
func (d *Dev) SetCursor(col, row uint8) error {
	if col >= cols || row >= rows {
		return fmt.Errorf("%w: column %d, row %d", ErrInvalidCursorPos, col, row)
	}
	if err := d.Command(cmdSetDDRAMAddr | (row*row1Offset + col)); err != nil {
		return err
	}
	return d.Delay(delayLong)
}

// SetCGRAMAddr selects a CGRAM address (0-31) for the following writes.
func (d *Dev) SetCGRAMAddr(addr uint8) error {
	if addr >= cgramSize {
		return fmt.Errorf("%w: 0x%02X", ErrInvalidAddr, addr)
	}
	if err := d.Command(cmdSetCGRAMAddr | addr); err != nil {
		return err
	}
	return d.Delay(delayShort)
}

// Clear blanks the display and moves the cursor to the first position.
func (d *Dev) Clear() error {
	if err := d.Command(cmdClear); err != nil {
		return err
	}
	return d.Delay(delayLong)
}

// Home moves the cursor to the first position and undoes any display shift.
func (d *Dev) Home() error {
	if err := d.Command(cmdHome); err != nil {
		return err
	}
	return d.Delay(delayLong)
}

// SetDisplay turns the display, the underline cursor and the blinking
// block cursor on or off.
func (d *Dev) SetDisplay(on, cursor, blink bool) error {
	cmd := cmdDisplayControl
	if on {
		cmd |= displayOn
	}
	if cursor {
		cmd |= displayCursor
	}
	if blink {
		cmd |= displayBlink
	}
	if err := d.Command(cmd); err != nil {
		return err
	}
	d.on, d.cursor, d.blink = on, cursor, blink
	return d.Delay(delayShort)
}

// ShiftCursor moves the cursor one position without writing.
func (d *Dev) ShiftCursor(right bool) error {
	return d.shift(0, right)
}

// ShiftDisplay scrolls both rows one position. DDRAM content is unchanged.
func (d *Dev) ShiftDisplay(right bool) error {
	return d.shift(shiftDisplay, right)
}

func (d *Dev) shift(target byte, right bool) error {
	cmd := cmdShift | target
	if right {
		cmd |= shiftRight
	}
	if err := d.Command(cmd); err != nil {
		return err
	}
	return d.Delay(delayShort)
}

// Delay blocks until t has elapsed on the timer.
func (d *Dev) Delay(t time.Duration) error {
	if d.halted {
		return ErrHalted
	}
	d.timer.Start(t)
	if err := d.timer.Wait(); err != nil {
		return fmt.Errorf("%w: %w", ErrTimer, err)
	}
	return nil
}

// Halt turns the display off. Any later call returns ErrHalted.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.SetDisplay(false, false, false)
	d.halted = true
	return err
}

// Release hands the pins and the timer back to the caller without touching
// the bus. Any later call returns ErrHalted.
func (d *Dev) Release() (Pins, Timer) {
	p, t := d.pins, d.timer
	d.pins, d.timer = Pins{}, nil
	d.halted = true
	return p, t
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("lcd1602.Dev{%dx%d}", cols, rows)
}

// writeByte sends b as two nibbles, high nibble first.
func (d *Dev) writeByte(b byte) error {
	if err := d.writeNibble(b >> 4); err != nil {
		return err
	}
	return d.writeNibble(b & 0x0F)
}

// writeNibble drives D4-D7 from the low 4 bits of n and pulses EN. The
// controller latches the data lines on the falling edge.
func (d *Dev) writeNibble(n byte) error {
	if err := d.out("EN", d.pins.EN, gpio.Low); err != nil {
		return err
	}
	data := [...]struct {
		name string
		p    Pin
	}{
		{"D4", d.pins.D4},
		{"D5", d.pins.D5},
		{"D6", d.pins.D6},
		{"D7", d.pins.D7},
	}
	for i, l := range data {
		if err := d.out(l.name, l.p, gpio.Level(n&(1<<i) != 0)); err != nil {
			return err
		}
	}
	if err := d.out("EN", d.pins.EN, gpio.High); err != nil {
		return err
	}
	if d.pulse > 0 {
		if err := d.Delay(d.pulse); err != nil {
			return err
		}
	}
	return d.out("EN", d.pins.EN, gpio.Low)
}

func (d *Dev) out(name string, p Pin, l gpio.Level) error {
	if err := p.Out(l); err != nil {
		return &GPIOError{Pin: name, Err: err}
	}
	return nil
}
