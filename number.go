package tm16xx

import (
	"errors"

	"github.com/flavioheleno/tm16xx/font"
)

// minus is the segment pattern of the minus sign.
const minus byte = 0b01000000

// SetDecNumber shows n right aligned in decimal using a number font such as
// font.Number. A negative n puts a minus sign on the first digit. Numbers that
// do not fit are replaced by the error banner.
//
// Bit i of dots lights the dot of the i-th digit counted from the right.
func (d *Dev) SetDecNumber(n int, dots uint16, leadingZeros bool, f font.Font) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	neg := n < 0
	v := uint64(n)
	width := d.digits
	if neg {
		v = uint64(-n)
		width--
	}
	if width < 1 || v >= pow10(width) {
		return d.SetDisplayToError()
	}

	for i := 0; i < d.digits; i++ {
		pos := d.digits - i - 1
		dot := dots>>i&1 == 1
		var err error
		switch {
		case neg && pos == 0:
			err = d.sendChar(pos, minus, dot)
		case i > 0 && v == 0 && !leadingZeros:
			err = d.sendChar(pos, 0, dot)
		default:
			err = d.sendChar(pos, f.At(int(v%10)), dot)
		}
		if err != nil {
			return err
		}
		v /= 10
	}
	return nil
}

// SetHexNumber shows n right aligned in hexadecimal using a number font such
// as font.Number. Numbers that do not fit are replaced by the error banner.
//
// Bit i of dots lights the dot of the i-th digit counted from the right.
func (d *Dev) SetHexNumber(n uint32, dots uint16, leadingZeros bool, f font.Font) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	if d.digits < 8 && n>>(4*d.digits) != 0 {
		return d.SetDisplayToError()
	}

	for i := 0; i < d.digits; i++ {
		pos := d.digits - i - 1
		dot := dots>>i&1 == 1
		var err error
		if i > 0 && n == 0 && !leadingZeros {
			err = d.sendChar(pos, 0, dot)
		} else {
			err = d.sendChar(pos, f.At(int(n&0xF)), dot)
		}
		if err != nil {
			return err
		}
		n >>= 4
	}
	return nil
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
