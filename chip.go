package tm16xx

// Chip describes how a TM16XX variant lays out its display RAM.
//
// The driver only talks to a Chip through this interface, so adding a variant
// means describing its address map, not changing the wire protocol.
type Chip interface {
	// String returns the part name.
	String() string
	// Grids returns the number of digit positions the chip can drive.
	Grids() int
	// DigitAddress returns the display RAM address of digit pos.
	DigitAddress(pos int) byte
	// KeyScanBytes returns how many bytes a key scan read returns, or 0 when
	// the chip has no key scan matrix.
	KeyScanBytes() int
}

// LEDChip is implemented by chips that drive discrete LEDs next to the digits.
type LEDChip interface {
	Chip
	// LEDAddress returns the display RAM address of the LED at pos.
	LEDAddress(pos int) byte
}

type tm1638 struct{}

func (tm1638) String() string            { return "TM1638" }
func (tm1638) Grids() int                { return 8 }
func (tm1638) DigitAddress(pos int) byte { return byte(pos << 1) }
func (tm1638) LEDAddress(pos int) byte   { return byte(pos<<1) + 1 }
func (tm1638) KeyScanBytes() int         { return 4 }

type tm1640 struct{}

func (tm1640) String() string            { return "TM1640" }
func (tm1640) Grids() int                { return 16 }
func (tm1640) DigitAddress(pos int) byte { return byte(pos) }
func (tm1640) KeyScanBytes() int         { return 0 }

type tm1668 struct{}

func (tm1668) String() string            { return "TM1668" }
func (tm1668) Grids() int                { return 7 }
func (tm1668) DigitAddress(pos int) byte { return byte(pos << 1) }
func (tm1668) KeyScanBytes() int         { return 5 }

var (
	// TM1638 drives 8 digits plus 8 bicolor LEDs and scans up to 24 keys.
	TM1638 LEDChip = tm1638{}
	// TM1640 drives 16 digits and has no key input. Its DIN/SCLK start
	// condition can be produced by passing the data pin as the strobe pin.
	TM1640 Chip = tm1640{}
	// TM1668 drives up to 7 digits and scans up to 20 keys.
	TM1668 Chip = tm1668{}
)
