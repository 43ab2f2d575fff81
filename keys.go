package tm16xx

import "errors"

var (
	// ErrNoKeyScan is returned when reading keys from a chip without a key
	// scan matrix.
	ErrNoKeyScan = errors.New("tm16xx: chip has no key scan")
	// ErrNoLEDs is returned when driving LEDs on a chip without discrete LEDs.
	ErrNoLEDs = errors.New("tm16xx: chip has no discrete LEDs")
)

// Color selects which half of a TM1638 bicolor LED is lit.
type Color byte

// LED colors. Red and green can be OR'd to light both halves.
const (
	ColorNone  Color = 0
	ColorRed   Color = 1
	ColorGreen Color = 2
)

// ScanKeys reads the raw key scan data of the chip. The number of bytes and
// their bit layout depend on the chip, see its datasheet.
func (d *Dev) ScanKeys() ([]byte, error) {
	if d.halted {
		return nil, errors.New("tm16xx: halted")
	}
	n := d.chip.KeyScanBytes()
	if n == 0 {
		return nil, ErrNoKeyScan
	}

	keys := make([]byte, n)
	err := d.frame(func() error {
		if err := d.sendByte(cmdReadKeys); err != nil {
			return err
		}
		for i := range keys {
			b, err := d.receiveByte()
			if err != nil {
				return err
			}
			keys[i] = b
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Buttons returns the state of the eight buttons of a TM1638 board, bit i set
// while button S(i+1) is pressed.
func (d *Dev) Buttons() (byte, error) {
	scan, err := d.ScanKeys()
	if err != nil {
		return 0, err
	}
	var keys byte
	for i := 0; i < len(scan) && i < 4; i++ {
		keys |= scan[i] << i
	}
	return keys, nil
}

// SetLED sets the LED next to digit pos.
func (d *Dev) SetLED(c Color, pos int) error {
	lc, ok := d.chip.(LEDChip)
	if !ok {
		return ErrNoLEDs
	}
	if err := d.checkPos(pos); err != nil {
		return err
	}
	return d.sendData(lc.LEDAddress(pos), byte(c))
}

// SetLEDs sets every LED at once: bit i of mask lights LED i red and bit i+8
// lights it green. Both bits together light both halves.
func (d *Dev) SetLEDs(mask uint16) error {
	for i := 0; i < d.digits; i++ {
		var c Color
		if mask>>i&1 == 1 {
			c |= ColorRed
		}
		if mask>>(i+8)&1 == 1 {
			c |= ColorGreen
		}
		if err := d.SetLED(c, i); err != nil {
			return err
		}
	}
	return nil
}
