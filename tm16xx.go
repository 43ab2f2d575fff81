// Package tm16xx controls TM16XX LED display drivers via three GPIO pins.
//
// The TM16XX family (TM1638, TM1640, TM1668) drives up to 16 seven-segment
// digits and, on some parts, scans a key matrix.
//
// See the examples for how to use this package.
package tm16xx

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/tm16xx/font"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// MaxIntensity is the brightest display setting.
const MaxIntensity byte = 7

// MaxDigits is the largest digit count of any supported chip.
const MaxDigits = 16

const (
	cmdDataAuto  byte = 0x40 // Data command, auto increment address
	cmdReadKeys  byte = 0x42 // Data command, read key scan data
	cmdDataFixed byte = 0x44 // Data command, fixed address
	cmdDisplay   byte = 0x80 // Display control command
	cmdAddress   byte = 0xC0 // Address command
	displayOn    byte = 0x08 // Display control: display on

	ramSize = 16
)

// Opts is the configuration for a TM16XX display.
type Opts struct {
	Chip   Chip // Chip variant (default: TM1638)
	Digits int  // Visible digits (default: all grids of Chip)

	Inactive bool // Leave the display off after initialization

	// Intensity is the brightness, 0-7; larger values are clamped. Nil Opts
	// means full brightness, but a zero value here is the dimmest setting.
	Intensity byte

	// Delay is inserted after every line transition. Leave it zero unless the
	// host toggles pins faster than the chip's ~1µs setup and hold times.
	Delay time.Duration

	// Font used by SetText (default: font.Default)
	Font font.Font

	// GridMap maps logical digit positions to the chip's grid numbers, for
	// boards that wire digits out of order. Must have Digits entries.
	GridMap []int
}

// Dev is the device handle for a TM16XX display.
type Dev struct {
	// Communication
	data  gpio.PinIO    // DIO, switched to input for key scan reads
	clk   gpio.PinOut   // CLK
	stb   gpio.PinOut   // STB
	delay time.Duration // Per transition delay

	// Layout
	chip    Chip
	digits  int
	gridMap []int
	font    font.Font

	// State
	active    bool
	intensity byte
	halted    bool
}

// New creates a new TM16XX device and puts the display in a known state:
// addressing mode set, brightness applied and the whole display RAM cleared.
//
// opts can be nil to use defaults (TM1638, 8 digits, on, full brightness).
func New(data gpio.PinIO, clk, stb gpio.PinOut, opts *Opts) (*Dev, error) {
	if data == nil || clk == nil || stb == nil {
		return nil, errors.New("tm16xx: data, clock and strobe pins are required")
	}
	if opts == nil {
		opts = &Opts{Intensity: MaxIntensity}
	}

	chip := opts.Chip
	if chip == nil {
		chip = TM1638
	}
	digits := opts.Digits
	if digits == 0 {
		digits = chip.Grids()
	}
	if digits < 1 || digits > chip.Grids() {
		return nil, fmt.Errorf("tm16xx: %s supports 1 to %d digits, got %d", chip, chip.Grids(), digits)
	}
	if opts.GridMap != nil {
		if len(opts.GridMap) != digits {
			return nil, errors.New("tm16xx: grid map must have one entry per digit")
		}
		for _, g := range opts.GridMap {
			if g < 0 || g >= chip.Grids() {
				return nil, fmt.Errorf("tm16xx: grid %d out of range for %s", g, chip)
			}
		}
	}
	f := opts.Font
	if f == nil {
		f = font.Default
	}

	d := &Dev{
		data:      data,
		clk:       clk,
		stb:       stb,
		delay:     opts.Delay,
		chip:      chip,
		digits:    digits,
		gridMap:   opts.GridMap,
		font:      f,
		active:    !opts.Inactive,
		intensity: min(opts.Intensity, MaxIntensity),
	}

	if err := d.init(); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init() error {
	// Idle state: strobe and clock high
	if err := d.out(d.data, gpio.Low); err != nil {
		return err
	}
	if err := d.out(d.stb, gpio.High); err != nil {
		return err
	}
	if err := d.out(d.clk, gpio.High); err != nil {
		return err
	}

	if err := d.sendCommand(cmdDataAuto); err != nil {
		return err
	}
	if err := d.sendCommand(d.control()); err != nil {
		return err
	}

	// Clear display RAM in one auto increment burst
	return d.frame(func() error {
		if err := d.sendByte(cmdAddress); err != nil {
			return err
		}
		for i := 0; i < ramSize; i++ {
			if err := d.sendByte(0); err != nil {
				return err
			}
		}
		return nil
	})
}

// control returns the display control command for the current state.
func (d *Dev) control() byte {
	c := cmdDisplay | d.intensity
	if d.active {
		c |= displayOn
	}
	return c
}

// SetupDisplay turns the display on or off and sets its brightness (0-7).
// Larger intensity values are clamped to MaxIntensity.
func (d *Dev) SetupDisplay(active bool, intensity byte) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	d.active = active
	d.intensity = min(intensity, MaxIntensity)
	if err := d.sendCommand(d.control()); err != nil {
		return err
	}

	// The TM1640 only latches the control byte after one more clock pulse.
	return d.frame(func() error {
		if err := d.out(d.clk, gpio.Low); err != nil {
			return err
		}
		return d.out(d.clk, gpio.High)
	})
}

// Intensity returns the current brightness (0-7).
func (d *Dev) Intensity() byte {
	return d.intensity
}

// Active reports whether the display is on.
func (d *Dev) Active() bool {
	return d.active
}

// Digits returns the number of visible digits.
func (d *Dev) Digits() int {
	return d.digits
}

// Halt blanks the display and turns it off.
// After calling Halt, every other method returns an error. Call New again
// to drive the display.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.ClearDisplay(); err != nil {
		return err
	}
	d.halted = true
	d.active = false
	return d.sendCommand(d.control())
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tm16xx.Dev{%s, %d digits}", d.chip, d.digits)
}

// frame runs fn with STB low. STB is raised again when fn fails.
func (d *Dev) frame(fn func() error) error {
	if err := d.out(d.stb, gpio.Low); err != nil {
		_ = d.stb.Out(gpio.High)
		return err
	}
	if err := fn(); err != nil {
		_ = d.stb.Out(gpio.High)
		return err
	}
	return d.out(d.stb, gpio.High)
}

// sendCommand sends one command byte in its own strobe frame.
func (d *Dev) sendCommand(cmd byte) error {
	return d.frame(func() error {
		return d.sendByte(cmd)
	})
}

// sendData writes value at a display RAM address using fixed addressing.
func (d *Dev) sendData(address, value byte) error {
	if err := d.sendCommand(cmdDataFixed); err != nil {
		return err
	}
	return d.frame(func() error {
		if err := d.sendByte(cmdAddress | address); err != nil {
			return err
		}
		return d.sendByte(value)
	})
}

// sendByte shifts b out LSB first. The chip samples DIO on the rising edge
// of CLK.
func (d *Dev) sendByte(b byte) error {
	for i := 0; i < 8; i++ {
		if err := d.out(d.clk, gpio.Low); err != nil {
			return err
		}
		if err := d.out(d.data, gpio.Level(b&1 == 1)); err != nil {
			return err
		}
		b >>= 1
		if err := d.out(d.clk, gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// receiveByte shifts one byte in from the chip, LSB first. DIO is an input
// with pull-up for the duration of the read and is left driven low after,
// also when the read fails.
func (d *Dev) receiveByte() (b byte, err error) {
	defer func() {
		if err != nil {
			_ = d.data.Out(gpio.Low)
		}
	}()
	if err := d.data.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return 0, fmt.Errorf("tm16xx: failed to set %s as input: %w", d.data, err)
	}

	for i := 0; i < 8; i++ {
		b >>= 1
		if err := d.out(d.clk, gpio.Low); err != nil {
			return 0, err
		}
		if d.data.Read() == gpio.High {
			b |= 0x80
		}
		if err := d.out(d.clk, gpio.High); err != nil {
			return 0, err
		}
	}

	if err := d.out(d.data, gpio.Low); err != nil {
		return 0, err
	}
	return b, nil
}

// out drives p to l and waits for the configured transition delay.
func (d *Dev) out(p gpio.PinOut, l gpio.Level) error {
	if err := p.Out(l); err != nil {
		return fmt.Errorf("tm16xx: failed to drive %s %s: %w", p, l, err)
	}
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	return nil
}

var _ conn.Resource = &Dev{}
