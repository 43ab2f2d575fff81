package tm16xx

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// frame is one strobe low to strobe high transaction as the chip sees it.
type frame struct {
	w     []byte // Bytes written by the host
	bits  int    // Bits clocked in while DIO was an output
	reads int    // Bits clocked out while DIO was an input
}

// bus plays the chip side of the three wire interface. It decodes bytes the
// host clocks in and feeds queued bits back when the host reads.
type bus struct {
	data, clk, stb *line

	frames []frame
	cur    *frame
	acc    byte

	// Bits the chip drives on DIO during reads. When loopback is set every
	// latched bit is queued as well.
	tx       []bool
	loopback bool
}

type role int

const (
	roleData role = iota
	roleClk
	roleStb
)

// line is a gpiotest pin that reports its edges to the bus.
type line struct {
	gpiotest.Pin
	bus   *bus
	role  role
	input bool
	pull  gpio.Pull
	fail  error
}

func newBus() *bus {
	b := &bus{}
	b.data = &line{Pin: gpiotest.Pin{N: "DIO", Num: 1}, bus: b, role: roleData}
	b.clk = &line{Pin: gpiotest.Pin{N: "CLK", Num: 2}, bus: b, role: roleClk}
	b.stb = &line{Pin: gpiotest.Pin{N: "STB", Num: 3}, bus: b, role: roleStb}
	return b
}

func (l *line) Out(v gpio.Level) error {
	if l.fail != nil {
		return l.fail
	}
	prev := l.Pin.Read()
	l.input = false
	if err := l.Pin.Out(v); err != nil {
		return err
	}
	l.bus.edge(l, prev, v)
	return nil
}

func (l *line) In(pull gpio.Pull, edge gpio.Edge) error {
	if l.fail != nil {
		return l.fail
	}
	l.input = true
	l.pull = pull
	return l.Pin.In(pull, edge)
}

func (l *line) Read() gpio.Level {
	if l.role != roleData || !l.input {
		return l.Pin.Read()
	}
	if len(l.bus.tx) == 0 {
		// Nothing driven, the pull-up wins.
		return gpio.High
	}
	v := l.bus.tx[0]
	l.bus.tx = l.bus.tx[1:]
	return gpio.Level(v)
}

func (b *bus) edge(l *line, prev, v gpio.Level) {
	switch l.role {
	case roleStb:
		if prev == gpio.High && v == gpio.Low {
			b.cur = &frame{}
			b.acc = 0
		} else if prev == gpio.Low && v == gpio.High && b.cur != nil {
			b.frames = append(b.frames, *b.cur)
			b.cur = nil
		}
	case roleClk:
		if prev != gpio.Low || v != gpio.High {
			return
		}
		if b.data.input {
			if b.cur != nil {
				b.cur.reads++
			}
			return
		}
		bit := b.data.Pin.Read()
		if b.loopback {
			b.tx = append(b.tx, bool(bit))
		}
		if b.cur == nil {
			return
		}
		b.acc >>= 1
		if bit {
			b.acc |= 0x80
		}
		b.cur.bits++
		if b.cur.bits%8 == 0 {
			b.cur.w = append(b.cur.w, b.acc)
		}
	}
}

// queue makes the chip answer the next reads with data, LSB first.
func (b *bus) queue(data ...byte) {
	for _, v := range data {
		for i := 0; i < 8; i++ {
			b.tx = append(b.tx, v>>i&1 == 1)
		}
	}
}

func (b *bus) reset() {
	b.frames = nil
	b.cur = nil
	b.tx = nil
}

// write is one fixed address data write.
type write struct {
	addr  byte
	value byte
}

// writes decodes the fixed address data writes recorded since the last
// reset. It returns an error if any frame does not fit the protocol.
func (b *bus) writes() ([]write, error) {
	var out []write
	for i := 0; i < len(b.frames); i++ {
		f := b.frames[i]
		if len(f.w) != 1 || f.w[0] != cmdDataFixed {
			continue
		}
		if i+1 >= len(b.frames) {
			return nil, errors.New("data command without address frame")
		}
		next := b.frames[i+1]
		if len(next.w) != 2 || next.w[0]&0xC0 != 0xC0 || next.bits != 16 {
			return nil, errors.New("malformed address frame")
		}
		out = append(out, write{addr: next.w[0] &^ 0xC0, value: next.w[1]})
		i++
	}
	return out, nil
}

// newTestDev creates a Dev on a fresh bus and forgets the init traffic.
func newTestDev(opts *Opts) (*Dev, *bus, error) {
	b := newBus()
	d, err := New(b.data, b.clk, b.stb, opts)
	if err != nil {
		return nil, nil, err
	}
	b.reset()
	return d, b, nil
}
