package tm16xx

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/flavioheleno/tm16xx/font"
)

// textWidth is the number of digits SetText fills.
const textWidth = 8

// sendChar writes a segment pattern to digit pos.
func (d *Dev) sendChar(pos int, data byte, dot bool) error {
	if dot {
		data |= font.DP
	}
	if d.gridMap != nil {
		pos = d.gridMap[pos]
	}
	return d.sendData(d.chip.DigitAddress(pos), data)
}

// checkPos validates a digit position supplied by the caller.
func (d *Dev) checkPos(pos int) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	if pos < 0 || pos >= d.digits {
		return errors.New("tm16xx: position out of range")
	}
	return nil
}

// SetDigit shows the low nibble of digit at pos, looked up in a number font
// such as font.Number.
func (d *Dev) SetDigit(digit byte, pos int, dot bool, f font.Font) error {
	if err := d.checkPos(pos); err != nil {
		return err
	}
	return d.sendChar(pos, f.At(int(digit&0xF)), dot)
}

// ClearDigit blanks the digit at pos, leaving only its dot lit if requested.
func (d *Dev) ClearDigit(pos int, dot bool) error {
	if err := d.checkPos(pos); err != nil {
		return err
	}
	return d.sendChar(pos, 0, dot)
}

// SetDisplay writes raw segment patterns to consecutive digits starting at 0.
// Patterns beyond the last digit are ignored.
func (d *Dev) SetDisplay(values []byte) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	for i, v := range values {
		if i >= d.digits {
			break
		}
		if err := d.sendChar(i, v, false); err != nil {
			return err
		}
	}
	return nil
}

// ClearDisplay blanks every digit.
func (d *Dev) ClearDisplay() error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	for i := 0; i < d.digits; i++ {
		if err := d.sendChar(i, 0, false); err != nil {
			return err
		}
	}
	return nil
}

// SetDisplayToError shows "Error" and blanks any digits past the eighth.
func (d *Dev) SetDisplayToError() error {
	if err := d.SetDisplay(font.Error); err != nil {
		return err
	}
	for i := len(font.Error); i < d.digits; i++ {
		if err := d.sendChar(i, 0, false); err != nil {
			return err
		}
	}
	return nil
}

// SetString writes text starting at digit pos using a character font such as
// font.Default. Text stops at the first NUL or at the last digit.
//
// Bit (Digits()-i-1) of dots lights the dot of the i-th character, so the
// most significant used bit belongs to the first character.
func (d *Dev) SetString(text string, dots uint16, pos int, f font.Font) error {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return d.writeString(text, dots, pos, f)
}

// SetStringBytes is like SetString for NUL terminated byte buffers.
func (d *Dev) SetStringBytes(text []byte, dots uint16, pos int, f font.Font) error {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return d.writeString(string(text), dots, pos, f)
}

func (d *Dev) writeString(text string, dots uint16, pos int, f font.Font) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	if pos < 0 || pos > d.digits {
		return errors.New("tm16xx: position out of range")
	}
	for i := 0; i < d.digits-pos && i < len(text); i++ {
		dot := dots>>(d.digits-i-1)&1 == 1
		if err := d.sendChar(pos+i, f.Char(text[i]), dot); err != nil {
			return err
		}
	}
	return nil
}

// SetText writes up to eight characters using the device font. A '.' lights
// the dot of the character before it instead of taking a digit of its own,
// so "12.34" fills four digits. The degree sign '°' (or a bare 0xB0 byte)
// is drawn with its own pattern and never carries a dot.
func (d *Dev) SetText(text string) error {
	if d.halted {
		return errors.New("tm16xx: halted")
	}
	limit := min(textWidth, d.digits)
	pos := 0
	for i := 0; i < len(text) && pos < limit; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == 0 {
			break
		}
		if r == '.' {
			i += size
			continue
		}

		var data byte
		degree := r == '°' || (r == utf8.RuneError && size == 1 && text[i] == 0xB0)
		if degree {
			data = font.Degree
		} else if r < utf8.RuneSelf {
			data = d.font.Char(byte(r))
		}
		i += size

		dot := !degree && i < len(text) && text[i] == '.'
		if err := d.sendChar(pos, data, dot); err != nil {
			return err
		}
		pos++
	}
	return nil
}
