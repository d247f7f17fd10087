// Package lcd1602 controls a 16x2 HD44780 character LCD over GPIO.
//
// The HD44780 is the de facto standard character LCD controller. This driver
// talks to it in 4-bit mode: each byte is sent as two nibbles, high nibble
// first, on the D4-D7 lines and latched by a pulse on EN. The R/W line is tied
// to ground, so the driver never reads the busy flag and instead waits a fixed
// settle delay after every instruction.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	VSS         → GND
//	VDD         → 5V
//	V0          → Contrast potentiometer
//	RS          → GPIO (any available pin)
//	RW          → GND
//	E           → GPIO (any available pin)
//	D0-D3       → Not connected
//	D4-D7       → GPIO (any four available pins)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/lcd1602"
//		"periph.io/x/devices/v3/lcd1602/countdown"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		dev, _ := lcd1602.New(lcd1602.Pins{
//			EN: gpioreg.ByName("GPIO24"),
//			RS: gpioreg.ByName("GPIO25"),
//			D4: gpioreg.ByName("GPIO23"),
//			D5: gpioreg.ByName("GPIO17"),
//			D6: gpioreg.ByName("GPIO18"),
//			D7: gpioreg.ByName("GPIO22"),
//		}, countdown.New(), nil)
//		defer dev.Halt()
//
//		dev.Print("Hello")
//		dev.SetCursor(0, 1)
//		dev.Print("World")
//	}
//
// # Initialization
//
// New runs the power-on sequence: a 50ms wait, three 0x03 nibbles to force
// the controller into 8-bit mode whatever state it was left in, a 0x02 nibble
// to switch to 4-bit mode, then function set (two lines), display on, clear
// and entry mode set. The whole sequence takes about 60ms.
//
// # Timing
//
// All waits go through the Timer passed to New. Package countdown provides
// one backed by the host clock; firmware can pass a hardware timer instead.
// The delays used are the datasheet minimums:
//
//	Power-on             50ms
//	Clear, Home, cursor  1.53ms
//	Other instructions   39µs
//	Between characters   320µs
//
// # Errors
//
// Out of range arguments are rejected with ErrInvalidCursorPos or
// ErrInvalidAddr before anything is written. A failing pin write is returned
// as a *GPIOError and a failing timer as ErrTimer; the display may then hold
// part of a transfer and the Dev should be discarded.
//
// # Compatibility with periph.io
//
// Dev implements display.TextDisplay and conn.Resource from
// periph.io/x/conn/v3, with 1-based rows and columns for MoveTo.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package lcd1602
