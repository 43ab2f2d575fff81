// Package tm16xx controls TM16XX LED display drivers over their three-wire
// serial interface.
//
// The TM16XX family (TM1638, TM1640, TM1668 and relatives) multiplexes
// seven-segment digits or LED grids and, on some parts, scans a key matrix.
// The chips have no hardware bus interface: the driver toggles plain GPIO pins.
//
// # Display Characteristics
//
// - Up to 16 digits, depending on the chip
// - 8 brightness levels (0-7) and a display on/off switch
// - One byte of segment data per digit, bit 7 is the decimal point
// - Key scan read back on TM1638 and TM1668
// - Bicolor LEDs next to each digit on TM1638 boards
//
// # Hardware Connection
//
// Connect the board to three GPIO pins:
//
//	Board Pin → System Pin
//	GND       → GND
//	VCC       → 3.3V or 5V
//	DIO       → GPIO (bidirectional, needs input with pull-up for key scan)
//	CLK       → GPIO
//	STB       → GPIO
//
// The TM1640 has no STB pin. Pass its DIN pin as both data and strobe.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/tm16xx"
//		"github.com/flavioheleno/tm16xx/font"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		dio := gpioreg.ByName("GPIO17")
//		clk := gpioreg.ByName("GPIO27")
//		stb := gpioreg.ByName("GPIO22")
//
//		// Create device, nil options means a TM1638 with 8 digits
//		dev, _ := tm16xx.New(dio, clk, stb, nil)
//		defer dev.Halt()
//
//		dev.SetString("HELLO", 0, 0, font.Default)
//	}
//
// # Writing Content
//
// Digits are addressed by position, 0 being the leftmost:
//
//	dev.SetDigit(7, 2, true, font.Number)       // "7." on the third digit
//	dev.SetString("Hi", 0b10000000, 0, font.Default)
//	dev.SetText("21.5°C")                        // dots fold into the previous digit
//	dev.SetDecNumber(-42, 0, false, font.Number)
//	dev.SetDisplay([]byte{0x76, 0x79, 0x38, 0x38, 0x3F}) // raw segments
//	dev.SetDisplayToError()
//
// Fonts are plain byte tables, see package font. Any table with the same
// layout can be passed instead.
//
// # Brightness
//
//	dev.SetupDisplay(true, 2)  // on, dim
//	dev.SetupDisplay(false, 2) // off, content kept
//
// # Keys and LEDs
//
//	keys, _ := dev.Buttons()         // TM1638: bit i is button S(i+1)
//	dev.SetLED(tm16xx.ColorRed, 0)
//	dev.SetLEDs(0x00FF)              // all red
//
// # Timing
//
// The chips need about 1µs of setup and hold time on each line. Hosts that
// toggle GPIOs faster than that can set Opts.Delay, which is inserted after
// every line transition.
//
// # Errors
//
// The protocol has no acknowledge phase. A missing or miswired chip does not
// produce an error: writes are lost and key reads return whatever the pull-up
// gives. Errors only come from the GPIO pins themselves or from invalid
// arguments.
//
// # Datasheet
//
// Register and timing details are in the TM1638, TM1640 and TM1668 datasheets
// published by Titan Micro Electronics.
package tm16xx
